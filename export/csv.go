package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hupe1980/stockmesh/core"
)

var (
	entryHeader  = []string{"seq", "timestamp", "agent", "action", "message"}
	sampleHeader = []string{"product_id", "timestamp", "store_stock", "warehouse_stock"}
)

// WriteEntriesCSV writes activity log entries to w as CSV with a header row.
func WriteEntriesCSV(w io.Writer, entries []core.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(entryHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		record := []string{
			strconv.FormatUint(e.Seq, 10),
			e.Timestamp.Format(time.RFC3339Nano),
			e.Agent,
			e.Action,
			e.Message,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSamplesCSV writes stock history samples to w as CSV with a header row.
func WriteSamplesCSV(w io.Writer, samples []core.Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(sampleHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range samples {
		record := []string{
			strconv.Itoa(s.ProductID),
			s.Timestamp.Format(time.RFC3339Nano),
			strconv.Itoa(s.StoreStock),
			strconv.Itoa(s.WarehouseStock),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing sample %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// EntriesToCSVFile writes activity log entries to a CSV file, creating or
// truncating it.
func EntriesToCSVFile(filename string, entries []core.Entry) error {
	return toFile(filename, func(w io.Writer) error {
		return WriteEntriesCSV(w, entries)
	})
}

// SamplesToCSVFile writes stock history samples to a CSV file, creating or
// truncating it.
func SamplesToCSVFile(filename string, samples []core.Sample) error {
	return toFile(filename, func(w io.Writer) error {
		return WriteSamplesCSV(w, samples)
	})
}
