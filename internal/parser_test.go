package internal

import (
	"testing"
)

func parseSource(source string) *interpreterState {
	state := scanSource(source)
	parser := &parser{
		state: state,
	}
	parser.parse()
	return state
}

func treeString(state *interpreterState) string {
	out := ""
	for i, stmt := range state.stmts {
		if i != 0 {
			out += "\n"
		}
		out += stmt.accept(astPrinter{}).(string)
	}
	return out
}

func checkTree(t *testing.T, source string, want string) {
	t.Helper()
	state := parseSource(source)
	if !state.Valid() {
		t.Errorf("Parsing %q: unexpected errors %v", source, state.errors)
		return
	}
	if got := treeString(state); got != want {
		t.Errorf("Parsing %q:\n\tgot  %s\n\twant %s", source, got, want)
	}
}

func TestPrecedence(t *testing.T) {
	checkTree(t, "1 + 2 * 3;", "(+ 1 (* 2 3))")
	checkTree(t, "(1 + 2) * 3;", "(* (+ 1 2) 3)")
	checkTree(t, "1 + 2 < 3 == true;", "(== (< (+ 1 2) 3) true)")
	checkTree(t, "!-1;", "(! (- 1))")
	checkTree(t, "-1 * 2;", "(* (- 1) 2)")
	checkTree(t, "1 or 2 and 3;", "(or 1 (and 2 3))")
	checkTree(t, "a = 1 or 2;", "(set a (or 1 2))")
}

func TestLeftAssociativity(t *testing.T) {
	checkTree(t, "1 - 2 - 3;", "(- (- 1 2) 3)")
	checkTree(t, "12 / 6 / 2;", "(/ (/ 12 6) 2)")
	checkTree(t, "1 == 2 == 3;", "(== (== 1 2) 3)")
	checkTree(t, "1 < 2 < 3;", "(< (< 1 2) 3)")
}

func TestAssignmentRightAssociativity(t *testing.T) {
	checkTree(t, "a = b = 3;", "(set a (set b 3))")
}

func TestStatementTrees(t *testing.T) {
	checkTree(t, "var a;", "(var a)")
	checkTree(t, "var a = 1;", "(var a 1)")
	checkTree(t, "print \"hi\";", "(print \"hi\")")
	checkTree(t, "print nil;", "(print nil)")
	checkTree(t, "{ var a = 1; print a; }", "(scope (var a 1) (print a))")
	checkTree(t, "{}", "(scope)")
	checkTree(t, "if (a) print 1; else print 2;", "(if (then a (print 1)) (else (print 2)))")
	checkTree(t, "if (a) print 1;", "(if (then a (print 1)))")
	checkTree(t, "while (true) print 1;", "(while true (print 1))")
}

func TestForDesugaring(t *testing.T) {
	checkTree(t,
		"for (var i = 0; i < 3; i = i + 1) print i;",
		"(scope (var i 0) (while (< i 3) (scope (print i) (set i (+ i 1)))))",
	)
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (; a < 3;) print 1;", "(while (< a 3) (print 1))")
	checkTree(t,
		"for (a = 0; a < 3;) print 1;",
		"(scope (set a 0) (while (< a 3) (print 1)))",
	)
}

func TestEmptySource(t *testing.T) {
	state := parseSource("")
	if !state.Valid() || len(state.stmts) != 0 {
		t.Errorf("Empty source should parse to no statements, got %v (%v)", state.stmts, state.errors)
	}
}

func TestSynchronizeRecovery(t *testing.T) {
	state := parseSource("1 + ;\nprint 2;")
	if len(state.errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", state.errors)
	}
	if got := treeString(state); got != "(print 2)" {
		t.Errorf("Parser should resume after the bad statement, got %s", got)
	}
}

func TestSynchronizeAtStatementKeyword(t *testing.T) {
	state := parseSource("1 2\nvar a = 2;")
	if len(state.errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", state.errors)
	}
	if got := treeString(state); got != "(var a 2)" {
		t.Errorf("Parser should resume at 'var', got %s", got)
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	state := parseSource("1 = 2;")
	if len(state.errors) != 1 || state.errors[0].err != errInvalidTarget {
		t.Fatalf("Expected an invalid target error, got %v", state.errors)
	}
	// The parser keeps the already-built left expression
	if got := treeString(state); got != "1" {
		t.Errorf("Got %s", got)
	}

	state = parseSource("a + b = c;")
	if len(state.errors) != 1 || state.errors[0].err != errInvalidTarget {
		t.Fatalf("Expected an invalid target error, got %v", state.errors)
	}
	if got := treeString(state); got != "(+ a b)" {
		t.Errorf("Got %s", got)
	}
}

func TestReservedWordsAreNotExpressions(t *testing.T) {
	for _, source := range []string{"fun f() {}", "return 1;", "class A {}", "print this;", "super.m();"} {
		state := parseSource(source)
		if state.Valid() {
			t.Errorf("Parsing %q should fail, got %s", source, treeString(state))
		}
	}
}
