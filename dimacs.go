package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format into a problem: one
// slice of signed, nonzero integers per clause. Negative integers denote
// negated variables.
//
// A few conventional variations are accepted, matching widely distributed
// DIMACS fixtures:
//
//   - Comment lines (starting with 'c') may appear anywhere, not only in a
//     preamble. The problem line (starting with 'p') must come before the
//     first clause.
//   - A line consisting of a single '%' ends the input; anything after it
//     is ignored.
//   - The problem line may be missing entirely.
//   - A lone "0" where a clause's first literal was expected ends the
//     input early, even if more text follows.
//
// Malformed integers are reported as *SyntaxError; a clause left open at
// end of input (a literal with no terminating 0) is reported as *EOFError.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int
	tok := 0
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" {
				return nil, &SyntaxError{Detail: fmt.Sprintf("malformed problem line %q", line)}
			}
			if fields[1] != "cnf" {
				return nil, &SyntaxError{Detail: fmt.Sprintf("only cnf supported; got %q", fields[1])}
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrap(&SyntaxError{Detail: "malformed #vars in problem line"}, err.Error())
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrap(&SyntaxError{Detail: "malformed #clauses in problem line"}, err.Error())
			}
			if problem.vars < 0 || problem.clauses < 0 {
				return nil, &SyntaxError{Detail: fmt.Sprintf("negative counts in problem line %q", line)}
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			if field == "0" && len(clause) == 0 {
				// A standalone 0 at the start of a clause is not an empty
				// clause: it's an end-of-file marker. The parser never
				// constructs empty clauses.
				return clauses, nil
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &SyntaxError{Detail: fmt.Sprintf("invalid literal %q: %s", field, err)}
			}
			tok++
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading DIMACS input")
	}
	if len(clause) > 0 {
		return nil, &EOFError{Position: tok}
	}

	if problem.vars > 0 {
		vars := make(map[int]struct{})
		for _, clause := range clauses {
			for _, v := range clause {
				if v < 0 {
					v = -v
				}
				if v > problem.vars {
					return nil, &SyntaxError{Detail: fmt.Sprintf(
						"formula contains var %d, but problem line asserts %d vars", v, problem.vars)}
				}
				vars[v] = struct{}{}
			}
		}
		if len(vars) > problem.vars {
			return nil, &SyntaxError{Detail: fmt.Sprintf(
				"problem line specifies %d vars, but there are %d", problem.vars, len(vars))}
		}
		if len(clauses) != problem.clauses {
			return nil, &SyntaxError{Detail: fmt.Sprintf(
				"problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))}
		}
	}
	return clauses, nil
}

// WriteDIMACS renders problem as DIMACS CNF text, including a problem line
// computed from the number of distinct variables referenced and the number
// of clauses.
func WriteDIMACS(w io.Writer, problem [][]int) error {
	vars := make(map[int]struct{})
	for _, cls := range problem {
		for _, v := range cls {
			if v < 0 {
				v = -v
			}
			vars[v] = struct{}{}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(vars), len(problem)); err != nil {
		return err
	}
	for _, cls := range problem {
		var b strings.Builder
		for _, v := range cls {
			fmt.Fprintf(&b, "%d ", v)
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
