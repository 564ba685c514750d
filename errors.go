package dpll

import "fmt"

// SyntaxError reports malformed DIMACS CNF input: a field that should have
// been a signed integer but wasn't, a malformed problem line, or a formula
// whose variable or clause count disagrees with its problem line.
type SyntaxError struct {
	Detail string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Detail)
}

// EOFError reports that the input ended in the middle of a clause: a
// nonzero literal appeared with no terminating 0 before end of input.
type EOFError struct {
	Position int // token offset at which input ended
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("unexpected end of input at token %d", e.Position)
}
