package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"droneops-mission/internal/plan"
	"droneops-mission/internal/sink"
)

const surveyPlan = "../../internal/plan/testdata/survey.yaml"

func TestNewWriterPrintOnly(t *testing.T) {
	w, cleanup, err := newWriter(true, "")
	if err != nil {
		t.Fatalf("newWriter returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*sink.JSONStdoutWriter); !ok {
		t.Fatalf("expected *sink.JSONStdoutWriter, got %T", w)
	}
}

func TestNewWriterGreptimeFallback(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	w, cleanup, err := newWriter(false, "")
	if err != nil {
		t.Fatalf("newWriter returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*sink.JSONStdoutWriter); !ok {
		t.Fatalf("expected *sink.JSONStdoutWriter, got %T", w)
	}
}

func TestNewWriterLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")
	w, cleanup, err := newWriter(true, path)
	if err != nil {
		t.Fatalf("newWriter returned error: %v", err)
	}
	defer cleanup()
	if _, ok := w.(*sink.MultiWriter); !ok {
		t.Fatalf("expected *sink.MultiWriter, got %T", w)
	}
}

func TestBuildThenDiffIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")

	rootCmd.SetArgs([]string{"build", "--plan", surveyPlan, "--print-only", "--log-file", path, "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}
	rows, err := sink.ReadRowsFile(path)
	if err != nil {
		t.Fatalf("ReadRowsFile: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"diff", "--plan", surveyPlan, "--previous", path, "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("diff: %v", err)
	}
	var changes []plan.Change
	if err := json.Unmarshal(out.Bytes(), &changes); err != nil {
		t.Fatalf("decode diff output %q: %v", out.String(), err)
	}
	if len(changes) != 0 {
		t.Fatalf("expected rebuilt plan to match export, got %+v", changes)
	}
}

func TestLoadMissionWithDefaults(t *testing.T) {
	defaultsPath = "testdata/vehicle.yaml"
	defer func() { defaultsPath = "" }()
	_, items, err := loadMission(surveyPlan)
	if err != nil {
		t.Fatalf("loadMission: %v", err)
	}
	for _, it := range items {
		if it.TargetSystem != 2 || it.TargetComponent != 190 {
			t.Fatalf("item %d not addressed to 2/190: %+v", it.Seq, it)
		}
	}
}
