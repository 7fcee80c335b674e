package sink

import (
	"encoding/json"
	"io"
	"os"
)

// ReadRows decodes JSONL rows from r until EOF.
func ReadRows(r io.Reader) ([]Row, error) {
	dec := json.NewDecoder(r)
	var rows []Row
	for {
		var row Row
		if err := dec.Decode(&row); err != nil {
			if err == io.EOF {
				return rows, nil
			}
			return nil, err
		}
		rows = append(rows, row)
	}
}

// ReadRowsFile opens a JSONL file written by FileWriter and decodes its rows.
func ReadRowsFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(f)
}

// Replay forwards every row of r to writer.
func Replay(r io.Reader, writer ItemWriter) error {
	rows, err := ReadRows(r)
	if err != nil {
		return err
	}
	return WriteAll(writer, rows)
}
