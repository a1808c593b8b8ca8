package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/stockmesh/core"
)

// WriteEntriesJSONL writes activity log entries to w, one JSON object per
// line, in the order given.
func WriteEntriesJSONL(w io.Writer, entries []core.Entry) error {
	enc := json.NewEncoder(w)
	for i, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}
	return nil
}

// WriteSamplesJSONL writes stock history samples to w, one JSON object per
// line, in the order given.
func WriteSamplesJSONL(w io.Writer, samples []core.Sample) error {
	enc := json.NewEncoder(w)
	for i, s := range samples {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding sample %d: %w", i, err)
		}
	}
	return nil
}

// EntriesToJSONLFile writes activity log entries to a JSONL file, creating or
// truncating it.
func EntriesToJSONLFile(filename string, entries []core.Entry) error {
	return toFile(filename, func(w io.Writer) error {
		return WriteEntriesJSONL(w, entries)
	})
}

// SamplesToJSONLFile writes stock history samples to a JSONL file, creating
// or truncating it.
func SamplesToJSONLFile(filename string, samples []core.Sample) error {
	return toFile(filename, func(w io.Writer) error {
		return WriteSamplesJSONL(w, samples)
	})
}

func toFile(filename string, write func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
