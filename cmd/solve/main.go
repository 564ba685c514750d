// Command solve reads a DIMACS CNF file and reports whether it is
// satisfiable, using one of the three engines in github.com/mgould/dpll.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mgould/dpll"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	solverFlag  string
	verboseFlag bool
)

func main() {
	root := &cobra.Command{
		Use:   "solve [input.cnf]",
		Short: "Decide satisfiability of a DIMACS CNF formula",
		Long: `solve reads a single problem specification in the DIMACS CNF format
and reports whether it is satisfiable.

It writes the output in the conventional way: either the first line is
UNSAT, or else the first line is SAT and the second line gives the
assignment as space-separated signed integers, one per variable, like an
input clause but without the terminating 0.

If no input file is given, solve reads from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runSolve,
	}
	root.Flags().StringVar(&solverFlag, "solver", "nonchro",
		"solving engine: naive, watch, or nonchro")
	root.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print solver statistics to stderr")

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	variant, ok := dpll.ParseVariant(solverFlag)
	if !ok {
		return errors.Errorf("unknown solver %q: valid values are naive, watch, nonchro", solverFlag)
	}

	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input file")
		}
		defer f.Close()
		r = f
	}

	problem, err := dpll.ParseDIMACS(r)
	if err != nil {
		return errors.Wrap(err, "reading input as DIMACS CNF")
	}

	nVars := dpll.NVars(problem)
	cnf := dpll.FromInts(problem, nVars)
	solver := dpll.New(variant, cnf, nVars, dpll.Interp{})

	log.WithFields(log.Fields{
		"solver":  variant,
		"vars":    nVars,
		"clauses": len(cnf),
	}).Debug("solve: starting")

	result := solver.Solve()

	if verboseFlag {
		printStats(variant, solver)
	}

	if !result.Sat {
		fmt.Println("UNSAT")
		return nil
	}
	fmt.Println("SAT")
	model := result.Model.Model(nVars)
	for i, v := range model {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(v)
	}
	fmt.Println()
	return nil
}

// printStats writes a sorted key/value dump of solver-internal counters
// to stderr, in the same shape the naive reference CLI used.
func printStats(variant dpll.Variant, solver dpll.Solver) {
	stats := map[string]int64{}
	switch s := solver.(type) {
	case *dpll.NaiveSolver:
		stats["decisions"] = s.Stats().Decisions
		stats["propagations"] = s.Stats().Propagations
	case *dpll.WatchSolver:
		stats["decisions"] = s.Stats().Decisions
		stats["propagations"] = s.Stats().Propagations
	case *dpll.CDCLSolver:
		stats["decisions"] = s.Stats().Decisions
		stats["propagations"] = s.Stats().Propagations
		stats["conflicts"] = s.Stats().Conflicts
		stats["learned"] = s.Stats().Learned
	}

	var keys []string
	var maxKeyLen int
	for key := range stats {
		keys = append(keys, key)
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}
	sort.Strings(keys)
	fmt.Fprintf(os.Stderr, "solver: %s\n", variant)
	for _, key := range keys {
		fmt.Fprintf(os.Stderr, "%*s %v\n", maxKeyLen, key, stats[key])
	}
}
