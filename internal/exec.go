package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type exec struct {
	state *interpreterState

	globals *env
	env     *env
}

func (e *exec) interpret() {
	defer func() {
		if r := recover(); r != nil {
			runErr := e.state.runtimeError
			if runErr == nil {
				panic(r)
			}
			e.state.logger.Fprintf(
				os.Stderr,
				"%s\n[line %d]\n",
				runErr.err.Error(),
				runErr.token.line,
			)
			log.WithFields(logrus.Fields{
				"line":   runErr.token.line,
				"lexeme": runErr.token.lexeme,
			}).Debug("runtime error, aborting")
		}
	}()
	for _, s := range e.state.stmts {
		s.accept(e)
	}
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, newEnv(e.state, e.env))
	return nil
}

// executeBlock restores the previous environment on every
// exit path, including error unwinding
func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		s.accept(e)
	}
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	stmt.expression.accept(e)
	return nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if e.truthy(stmt.condition.accept(e)) {
		stmt.thenBranch.accept(e)
	} else if stmt.elseBranch != nil {
		stmt.elseBranch.accept(e)
	}
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := stmt.expression.accept(e)
	e.state.logger.Println(stringify(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = stmt.initializer.accept(e)
	}
	e.env.define(stmt.name.lexeme, val)
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for e.truthy(stmt.condition.accept(e)) {
		stmt.body.accept(e)
	}
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := expr.value.accept(e)
	e.env.assign(expr.name, val)
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := expr.left.accept(e)
	right := expr.right.accept(e)
	switch expr.operator.token {
	case tkEqualEqual:
		return left == right
	case tkBangEqual:
		return left != right
	case tkGreater:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum <= rightNum
	case tkPlus:
		leftNum, leftIsNum := left.(float64)
		rightNum, rightIsNum := right.(float64)
		if leftIsNum && rightIsNum {
			return leftNum + rightNum
		}
		leftStr, leftIsStr := left.(string)
		rightStr, rightIsStr := right.(string)
		if leftIsStr && rightIsStr {
			return leftStr + rightStr
		}
		e.state.runtimeErr(errOperandsNumbersOrStrings, expr.operator)
	case tkMinus:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum - rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum / rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum * rightNum
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) getNums(binExpr *binaryExpr, left, right interface{}) (float64, float64) {
	leftNum, ok := left.(float64)
	if !ok {
		e.state.runtimeErr(errOperandsNumbers, binExpr.operator)
	}
	rightNum, ok := right.(float64)
	if !ok {
		e.state.runtimeErr(errOperandsNumbers, binExpr.operator)
	}
	return leftNum, rightNum
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

// visitLogicalExpr short-circuits and yields the deciding
// operand value, not a coerced boolean
func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := expr.left.accept(e)

	if expr.operator.token == tkOr {
		if e.truthy(left) {
			return left
		}
	} else {
		if !e.truthy(left) {
			return left
		}
	}

	return expr.right.accept(e)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := expr.right.accept(e)
	switch expr.operator.token {
	case tkBang:
		return !e.truthy(value)
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			e.state.runtimeErr(errOperandNumber, expr.operator)
		}
		return -valueNum
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.env.get(expr.name)
}

// truthy: only false and nil are falsy, everything else
// (including 0 and "") is truthy
func (e *exec) truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	valueBool, isBool := value.(bool)
	if isBool {
		return valueBool
	}
	return true
}

func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if valueNum, isNum := value.(float64); isNum {
		return strconv.FormatFloat(valueNum, 'g', -1, 64)
	}
	if valueStr, isStr := value.(string); isStr {
		return valueStr
	}
	return fmt.Sprintf("%v", value)
}
