package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/tevino/abool/v2"
)

type parseError struct {
	err   error
	line  int
	token *token
}

func (e parseError) String() string {
	where := ""
	if e.token != nil {
		if e.token.token == tkEOF {
			where = " at end"
		} else {
			where = fmt.Sprintf(" at '%s'", e.token.lexeme)
		}
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, where, e.err)
}

type runtimeError struct {
	err   error
	token *token
}

// interpreterState stores the state of an interpreter run
type interpreterState struct {
	source string
	logger IPrinter

	tokens []token
	stmts  []stmt

	errors       []parseError
	runtimeError *runtimeError

	hadError        *abool.AtomicBool
	hadRuntimeError *abool.AtomicBool
}

func newInterpreterState(source string, logger IPrinter) *interpreterState {
	return &interpreterState{
		source:          source,
		logger:          logger,
		errors:          make([]parseError, 0),
		hadError:        abool.New(),
		hadRuntimeError: abool.New(),
	}
}

func (s *interpreterState) setError(err error, line int, tk *token) {
	s.errors = append(s.errors, parseError{
		err:   err,
		line:  line,
		token: tk,
	})
	s.hadError.Set()
}

func (s *interpreterState) fatalError(err error, line int, tk *token) {
	s.setError(err, line, tk)
	panic(err)
}

func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.runtimeError = &runtimeError{
		err:   err,
		token: tk,
	}
	s.hadRuntimeError.Set()
	panic(s.runtimeError)
}

// Valid returns true if no error was found so far
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all accumulated compile-time errors and
// reports whether there were any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, e.String())
	}
	return len(s.errors) > 0
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectedExpression = errors.New("Expect expression.")
var errExpectedVarName = errors.New("Expect variable name.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonLoop = errors.New("Expect ';' after loop condition.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedBrace = errors.New("Expect '}' after block.")
var errExpectedParenIf = errors.New("Expect '(' after 'if'.")
var errExpectedParenWhile = errors.New("Expect '(' after 'while'.")
var errExpectedParenFor = errors.New("Expect '(' after 'for'.")
var errUnclosedParenCond = errors.New("Expect ')' after condition.")
var errUnclosedParenFor = errors.New("Expect ')' after for clauses.")
var errInvalidTarget = errors.New("Invalid assignment target.")

// Runtime errors
var errOperandNumber = errors.New("Operand must be a number.")
var errOperandsNumbers = errors.New("Operands must be numbers.")
var errOperandsNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errUndefinedOp = errors.New("Undefined operator.")
