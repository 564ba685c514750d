package dpll

import "testing"

func TestFromIntsToInts(t *testing.T) {
	problem := [][]int{{1, -2, 3}, {-1, 2}, {3}}
	cnf := FromInts(problem, NVars(problem))
	if len(cnf) != len(problem) {
		t.Fatalf("FromInts produced %d clauses, want %d", len(cnf), len(problem))
	}
	back := ToInts(cnf)
	for i, cls := range problem {
		if len(back[i]) != len(cls) {
			t.Fatalf("clause %d: got %v, want %v", i, back[i], cls)
		}
		for j, n := range cls {
			if back[i][j] != n {
				t.Fatalf("clause %d literal %d: got %d, want %d", i, j, back[i][j], n)
			}
		}
	}
}

func TestNVars(t *testing.T) {
	problem := [][]int{{1, -5}, {3, -2}}
	if n := NVars(problem); n != 5 {
		t.Fatalf("NVars() = %d, want 5", n)
	}
	if n := NVars(nil); n != 0 {
		t.Fatalf("NVars(nil) = %d, want 0", n)
	}
}
