package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), DefaultFile)); err == nil {
		t.Fatal("Load() with explicit missing file should error")
	}

	// No explicit file: defaults apply
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Exercises.InputCSV != "exercises_updated_muscles.csv" {
		t.Errorf("Exercises.InputCSV = %q", cfg.Exercises.InputCSV)
	}
	if cfg.Exercises.OutputSQL != "all_exercises_insert.sql" {
		t.Errorf("Exercises.OutputSQL = %q", cfg.Exercises.OutputSQL)
	}
	if cfg.Foods.InputSQL != "batch-insert-common-foods.sql" {
		t.Errorf("Foods.InputSQL = %q", cfg.Foods.InputSQL)
	}
	if cfg.Foods.OutputSQL != "batch-insert-common-foods-fixed.sql" {
		t.Errorf("Foods.OutputSQL = %q", cfg.Foods.OutputSQL)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Database.Port = %q", cfg.Database.Port)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbtools.yaml")
	yaml := `
exercises:
  input_csv: data/exercises.csv
database:
  host: db.internal
  port: "5433"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Exercises.InputCSV != "data/exercises.csv" {
		t.Errorf("Exercises.InputCSV = %q, want file value", cfg.Exercises.InputCSV)
	}
	// Unset keys keep defaults
	if cfg.Exercises.OutputSQL != "all_exercises_insert.sql" {
		t.Errorf("Exercises.OutputSQL = %q, want default", cfg.Exercises.OutputSQL)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != "5433" {
		t.Errorf("Database = %+v", cfg.Database)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbtools.yaml")
	if err := os.WriteFile(path, []byte("database:\n  host: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DBTOOLS_DB_HOST", "from-env")
	t.Setenv("DBTOOLS_FOODS_OUTPUT", "fixed.sql")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Host != "from-env" {
		t.Errorf("Database.Host = %q, want env value", cfg.Database.Host)
	}
	if cfg.Foods.OutputSQL != "fixed.sql" {
		t.Errorf("Foods.OutputSQL = %q, want env value", cfg.Foods.OutputSQL)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dbtools.yaml")
	if err := os.WriteFile(path, []byte("database: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for malformed YAML, got nil")
	}
}

func TestConnString(t *testing.T) {
	cfg := defaults()
	cfg.Database.Host = "db.internal"
	cfg.Database.Password = "secret"
	cfg.Database.Database = "fitness"

	got := cfg.ConnString()
	want := "host=db.internal port=5432 user=postgres password=secret dbname=fitness sslmode=disable"
	if got != want {
		t.Errorf("ConnString() = %q, want %q", got, want)
	}
	if !strings.Contains(got, "sslmode=disable") {
		t.Error("ConnString() missing sslmode")
	}
}
