// Package source reads a uC source file, detecting its byte-order-mark
// encoding the same way the surrounding ecosystem's script loaders do, and
// returning decoded UTF-8 text ready for the lexer.
package source

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read loads path and returns its contents as a UTF-8 string. A leading
// UTF-8, UTF-16LE, or UTF-16BE byte-order mark is detected and stripped;
// files without one are assumed to already be UTF-8.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8 and carries no recognized byte-order mark", path)
	}
	return string(data), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16: %w", err)
	}
	return string(bytes.TrimPrefix(utf8Data, []byte("﻿"))), nil
}
