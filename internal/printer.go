package internal

import "fmt"

// R generic visitor result type
type R interface{}

// PrintTree prints a parenthesized rendering of the ast
func (s *interpreterState) PrintTree() {
	out := ""
	for _, stmt := range s.stmts {
		out += stmt.accept(astPrinter{}).(string) + "\n"
	}
	fmt.Print(out)
}

type astPrinter struct{}

func (v astPrinter) visitBlockStmt(stmt *blockStmt) R {
	out := "(scope"
	for _, s := range stmt.stmts {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v astPrinter) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("(if (then %v %v)", stmt.condition.accept(v), stmt.thenBranch.accept(v))
	if stmt.elseBranch != nil {
		out += fmt.Sprintf(" (else %v)", stmt.elseBranch.accept(v))
	}
	return out + ")"
}

func (v astPrinter) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.expression.accept(v))
}

func (v astPrinter) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme)
	}
	return fmt.Sprintf("(var %s %v)", stmt.name.lexeme, stmt.initializer.accept(v))
}

func (v astPrinter) visitWhileStmt(stmt *whileStmt) R {
	return fmt.Sprintf("(while %v %v)", stmt.condition.accept(v), stmt.body.accept(v))
}

func (v astPrinter) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(set %s %v)", expr.name.lexeme, expr.value.accept(v))
}

func (v astPrinter) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v astPrinter) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(v)
}

func (v astPrinter) visitLiteralExpr(expr *literalExpr) R {
	if expr.value == nil {
		return "nil"
	}
	stringLiteral, isString := expr.value.(string)
	if isString {
		return "\"" + stringLiteral + "\""
	}
	return fmt.Sprintf("%v", expr.value)
}

func (v astPrinter) visitLogicalExpr(expr *logicalExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v astPrinter) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v astPrinter) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}
