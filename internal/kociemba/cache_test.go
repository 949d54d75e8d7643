package kociemba

import (
	"os"
	"path/filepath"
	"testing"
)

func smallMoveAndPruneTables() (*moveTables, *pruneTables) {
	mt := newMoveTables()
	pt := newPruneTables(mt)
	return mt, pt
}

func TestCacheRoundTrip(t *testing.T) {
	mt, pt := smallMoveAndPruneTables()
	path := filepath.Join(t.TempDir(), "tables.cache")

	if err := saveTables(path, defaultCacheName, mt, pt); err != nil {
		t.Fatalf("saveTables: %v", err)
	}

	gotMT, gotPT, err := loadTables(path, defaultCacheName)
	if err != nil {
		t.Fatalf("loadTables: %v", err)
	}
	if gotMT.Twist != mt.Twist {
		t.Error("loaded Twist table does not match saved table")
	}
	if gotPT.SliceTwist[0] != pt.SliceTwist[0] {
		t.Error("loaded SliceTwist table does not match saved table")
	}
}

func TestCacheRejectsWrongName(t *testing.T) {
	mt, pt := smallMoveAndPruneTables()
	path := filepath.Join(t.TempDir(), "tables.cache")
	if err := saveTables(path, "some-name", mt, pt); err != nil {
		t.Fatalf("saveTables: %v", err)
	}
	if _, _, err := loadTables(path, "other-name"); err == nil {
		t.Fatal("loadTables with mismatched name: want error, got nil")
	}
}

func TestCacheRejectsTruncatedFile(t *testing.T) {
	mt, pt := smallMoveAndPruneTables()
	path := filepath.Join(t.TempDir(), "tables.cache")
	if err := saveTables(path, defaultCacheName, mt, pt); err != nil {
		t.Fatalf("saveTables: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	truncated := data[:len(data)/2]
	if err := os.WriteFile(path, truncated, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := loadTables(path, defaultCacheName); err == nil {
		t.Fatal("loadTables on truncated file: want error, got nil")
	}
}

func TestCacheRejectsCorruptedChecksum(t *testing.T) {
	mt, pt := smallMoveAndPruneTables()
	path := filepath.Join(t.TempDir(), "tables.cache")
	if err := saveTables(path, defaultCacheName, mt, pt); err != nil {
		t.Fatalf("saveTables: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// Flip a byte well past the header so the payload decodes but its
	// checksum no longer matches.
	corrupt := append([]byte{}, data...)
	corrupt[len(corrupt)-1] ^= 0xFF
	if err := os.WriteFile(path, corrupt, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := loadTables(path, defaultCacheName); err == nil {
		t.Fatal("loadTables on corrupted file: want error, got nil")
	}
}

func TestLoadOrBuildTablesBuildsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.cache")
	tb := loadOrBuildTables(path)
	if tb == nil || tb.move == nil || tb.prune == nil {
		t.Fatal("loadOrBuildTables did not build a table set for a missing cache file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("loadOrBuildTables did not write the cache file: %v", err)
	}
}

func TestWarmCacheThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warm.cache")
	if err := WarmCache(path); err != nil {
		t.Fatalf("WarmCache: %v", err)
	}
	if _, _, err := loadTables(path, defaultCacheName); err != nil {
		t.Fatalf("loadTables after WarmCache: %v", err)
	}
}
