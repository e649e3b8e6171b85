package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:generate go run . ../../internal

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astgen <output directory>")
		os.Exit(64)
	}
	outDir := os.Args[1]

	defineAst(outDir, "Expr", []string{
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Logical: left expr, operator *token, right expr",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	})

	defineAst(outDir, "Stmt", []string{
		"Block: stmts []stmt",
		"Expr: expression expr",
		"If: condition expr, thenBranch stmt, elseBranch stmt",
		"Print: expression expr",
		"Var: name *token, initializer expr",
		"While: condition expr, body stmt",
	})
}

func defineAst(outDir, baseName string, types []string) {
	path := filepath.Join(outDir, strings.ToLower(baseName)+".go")
	if err := os.WriteFile(path, []byte(generateAst(baseName, types)), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)

	out := "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\taccept(" + base + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", base)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + base + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, structName, structFields string) string {
	structType := strings.ToLower(string(structName[0])) + structName[1:] + baseName

	out := "type " + structType + " struct {\n"
	for _, field := range strings.Split(structFields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"

	out += "func (s *" + structType + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + structName + baseName + "(s)\n"
	out += "}\n\n"

	return out
}
