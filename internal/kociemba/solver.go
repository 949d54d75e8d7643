// Package kociemba implements Kociemba's two-phase IDA* algorithm for
// solving the 3x3x3 Rubik's cube: a facelet string goes in, a bounded
// move sequence restoring the solved state comes out.
//
// The core never performs I/O and never logs; table construction and
// search are single-threaded and cooperative, checking the deadline at
// every node of the phase-1 and phase-2 searches. Move and pruning
// tables are read-only after
// construction and may be shared across concurrent Solve calls.
package kociemba

import (
	"strings"
	"time"
)

// Options configures a Solve call beyond the required facelets, maxDepth
// and timeout.
type Options struct {
	// CachePath, if non-empty, loads move/pruning tables from this file
	// if present and valid, building and writing them otherwise. Empty
	// means build the tables in memory for this call (or reuse the
	// process-wide shared set — see sharedTables).
	CachePath string

	// Separator, if true, inserts a "." token in the returned solution
	// string between the last phase-1 move and the first phase-2 move.
	// Purely diagnostic: it has no effect on move count or correctness.
	Separator bool
}

const phaseSeparator = "."

// maxSearchDepth caps the maxDepth a caller may request; Solve clamps
// larger values to it. No legal 3x3x3 scramble requires more than this
// many moves under the two-phase algorithm.
const maxSearchDepth = 31

// Solve finds a move sequence of at most maxDepth moves restoring the
// solved state from facelets, searching for at most timeout before
// giving up. It returns the solution as a space-separated token string
// (see §6.2 in the external-interface contract) or a *SolveError
// identifying which precondition or search bound failed.
func Solve(facelets string, maxDepth int, timeout time.Duration, opts Options) (string, error) {
	c, err := parseFacelets(facelets)
	if err != nil {
		return "", err
	}
	if code := c.Verify(); code != 0 {
		return "", newSolveError(code)
	}

	if maxDepth > maxSearchDepth {
		maxDepth = maxSearchDepth
	}
	deadline := time.Now().Add(timeout)

	t := sharedTables()
	if opts.CachePath != "" {
		t = loadOrBuildTables(opts.CachePath)
	}

	result, err := solveSearch(c, maxDepth, deadline, t)
	if err != nil {
		return "", err
	}

	return renderSolution(result, opts), nil
}

func renderSolution(r *searchResult, opts Options) string {
	if len(r.moves) == 0 {
		return ""
	}
	tokens := make([]string, 0, len(r.moves)+1)
	for i, mv := range r.moves {
		if opts.Separator && i == r.phase1Len && i > 0 && i < len(r.moves) {
			tokens = append(tokens, phaseSeparator)
		}
		tokens = append(tokens, moveNames[mv])
	}
	return strings.Join(tokens, " ")
}
