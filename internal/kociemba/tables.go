package kociemba

import "sync"

// tables bundles the move and pruning tables the search needs. It is
// built once (either from scratch or from an on-disk cache) and shared
// read-only across every call to Solve — see the concurrency design: no
// table is ever mutated after construction.
type tables struct {
	move  *moveTables
	prune *pruneTables
}

func buildTables() *tables {
	mt := newMoveTables()
	pt := newPruneTables(mt)
	return &tables{move: mt, prune: pt}
}

const defaultCacheName = "kociemba-tables-v1"

var (
	defaultTablesOnce sync.Once
	defaultTables     *tables
)

// sharedTables returns the process-wide table set, building it on first
// use. Callers that want an on-disk cache should set Options.CachePath,
// which goes through loadOrBuildTables; this accessor always builds in
// memory.
func sharedTables() *tables {
	defaultTablesOnce.Do(func() {
		defaultTables = buildTables()
	})
	return defaultTables
}

// loadOrBuildTables loads a cached table set from path if present and
// valid, otherwise builds the tables from scratch and writes them to
// path for next time. Passing an empty path always builds in memory
// without touching disk.
func loadOrBuildTables(path string) *tables {
	if path == "" {
		return buildTables()
	}
	if mt, pt, err := loadTables(path, defaultCacheName); err == nil {
		return &tables{move: mt, prune: pt}
	}
	t := buildTables()
	_ = saveTables(path, defaultCacheName, t.move, t.prune) // best effort; a failed write just skips caching
	return t
}

// WarmCache builds the move and pruning tables and writes them to path,
// so the first real Solve call on this machine can load them instead of
// rebuilding. It is meant to run once at deploy time or process startup;
// Solve itself never needs it.
func WarmCache(path string) error {
	t := buildTables()
	return saveTables(path, defaultCacheName, t.move, t.prune)
}
