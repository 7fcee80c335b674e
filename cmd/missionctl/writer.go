package main

import (
	"os"

	"droneops-mission/internal/sink"
)

// newWriter sets up the item writer based on flags and env vars.
// It returns the writer and a cleanup function to close any resources.
func newWriter(printOnly bool, logFile string) (sink.ItemWriter, func(), error) {
	cleanup := func() {}

	w, err := baseWriter(printOnly)
	if err != nil {
		return nil, nil, err
	}
	if logFile == "" {
		return w, cleanup, nil
	}

	fw, err := sink.NewFileWriter(logFile)
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() { fw.Close() }
	return sink.NewMultiWriter(w, fw), cleanup, nil
}

// baseWriter chooses the underlying writer based on printOnly flag and env vars.
func baseWriter(printOnly bool) (sink.ItemWriter, error) {
	if printOnly || os.Getenv("GREPTIMEDB_ENDPOINT") == "" {
		return sink.NewJSONStdoutWriter(), nil
	}

	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	return sink.NewGreptimeDBWriter(endpoint, database, os.Getenv("MISSION_ITEMS_TABLE"))
}
