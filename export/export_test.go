package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/core"
)

func testEntries() []core.Entry {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []core.Entry{
		{
			ID:        "e2",
			Seq:       2,
			Timestamp: ts.Add(time.Second),
			Agent:     core.AgentStore,
			Action:    core.ActionRestock,
			Message:   "Restocked store with 11 Smartphone X(s) from warehouse. New store stock: 20.",
		},
		{
			ID:        "e1",
			Seq:       1,
			Timestamp: ts,
			Agent:     core.AgentCustomer,
			Action:    core.ActionPurchase,
			Message:   "Purchased 6 Smartphone X(s). Store stock now: 9.",
		},
	}
}

func testSamples() []core.Sample {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []core.Sample{
		{ProductID: 1, Timestamp: ts, StoreStock: 9, WarehouseStock: 50},
		{ProductID: 1, Timestamp: ts.Add(time.Second), StoreStock: 20, WarehouseStock: 39},
	}
}

func TestWriteEntriesJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntriesJSONL(&buf, testEntries()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first core.Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, uint64(2), first.Seq)
	assert.Equal(t, core.AgentStore, first.Agent)
	assert.Contains(t, lines[1], "Purchased 6 Smartphone X(s).")
}

func TestWriteSamplesJSONL_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSamplesJSONL(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteEntriesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntriesCSV(&buf, testEntries()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "seq,timestamp,agent,action,message", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2,"), "rows keep input order")
	assert.Contains(t, lines[2], "Customer Agent")
}

func TestWriteSamplesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSamplesCSV(&buf, testSamples()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "product_id,timestamp,store_stock,warehouse_stock", lines[0])
	assert.Equal(t, "1,2024-03-01T12:00:00Z,9,50", lines[1])
	assert.Equal(t, "1,2024-03-01T12:00:01Z,20,39", lines[2])
}

func TestEntriesToJSONLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.jsonl")
	require.NoError(t, EntriesToJSONLFile(path, testEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestSamplesToCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, SamplesToCSVFile(path, testSamples()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "product_id,"))
}

func TestToFile_BadPath(t *testing.T) {
	err := EntriesToCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating file")
}
