// Package errors formats ucc diagnostics. Every diagnostic anchors to a
// source position and a kind drawn from spec.md §7: lexical, syntactic,
// symbol, type, or backend.
package errors

import (
	"fmt"
	"strings"

	"github.com/uclang/ucc/internal/lexer"
)

// Kind classifies a CompilerError per spec.md §7.
type Kind string

const (
	Lexical   Kind = "lexical"
	Syntactic Kind = "syntactic"
	Symbol    Kind = "symbol"
	Type      Kind = "type"
	Backend   Kind = "backend"
)

// CompilerError is a single diagnostic with enough context to render both
// the spec-mandated one-line form and a verbose source-excerpt form.
type CompilerError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	Source  string
}

// New creates a CompilerError.
func New(kind Kind, pos lexer.Position, message string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message}
}

// Error implements the error interface using the one-line form.
func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders "file:line:col: kind: message", the line spec.md §6
// requires on the error stream. When verbose is true, a source excerpt with
// a caret is appended beneath it, in the teacher's source-context style.
func (e *CompilerError) Format(verbose bool) string {
	line := fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
	if !verbose {
		return line
	}
	src := e.sourceLine(e.Pos.Line)
	if src == "" {
		return line
	}
	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n  ")
	sb.WriteString(src)
	sb.WriteString("\n  ")
	if e.Pos.Column > 0 {
		sb.WriteString(strings.Repeat(" ", e.Pos.Column-1))
	}
	sb.WriteString("^")
	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders every error, one per line (plus excerpts if verbose),
// in source order — the order they were collected, per spec.md §7.
func FormatAll(errs []*CompilerError, verbose bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(verbose)
	}
	return strings.Join(parts, "\n")
}
