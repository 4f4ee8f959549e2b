package main

import (
	"os"

	"github.com/uclang/ucc/cmd/ucc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
