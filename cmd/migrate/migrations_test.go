package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
)

// onDiskMigrationsDir resolves db/migrations from this file, which lives in cmd/migrate/.
func onDiskMigrationsDir(t *testing.T) string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations"))
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	goose.SetBaseFS(nil)
	migrations, err := goose.CollectMigrations(onDiskMigrationsDir(t), 0, goose.MaxVersion)
	if err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
	for i, m := range migrations {
		if m.Version != int64(i+1) {
			t.Fatalf("expected sequential versions, %s has version %d", m.Source, m.Version)
		}
	}
}

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	dir := onDiskMigrationsDir(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		for _, directive := range []string{"-- +goose Up", "-- +goose Down"} {
			if !strings.Contains(s, directive) {
				t.Fatalf("%s missing %q", e.Name(), directive)
			}
		}
	}
}
