package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance.
// It reports whether a compile-time error and whether a runtime
// error occurred.
func RunSourceWithPrinter(source string, p IPrinter) (hadError, hadRuntimeError bool) {
	state := newInterpreterState(source, p)

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	log.WithFields(logrus.Fields{"tokens": len(state.tokens)}).Debug("scan complete")

	if state.PrintErrors() {
		return true, false
	}

	parser := &parser{
		state: state,
	}
	parser.parse()
	log.WithFields(logrus.Fields{"stmts": len(state.stmts)}).Debug("parse complete")

	if state.PrintErrors() {
		return true, false
	}

	exec := &exec{
		env:   newEnv(state, nil),
		state: state,
	}
	exec.globals = exec.env

	exec.interpret()

	return false, state.hadRuntimeError.IsSet()
}

// PrintSourceTree parses source code and prints the resulting
// tree instead of executing it. It reports whether the source
// was parsed cleanly.
func PrintSourceTree(source string, p IPrinter) bool {
	state := newInterpreterState(source, p)

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()

	if state.PrintErrors() {
		return false
	}

	parser := &parser{
		state: state,
	}
	parser.parse()

	if state.PrintErrors() {
		return false
	}

	state.PrintTree()
	return true
}
