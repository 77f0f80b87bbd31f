package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microgrid-twin/internal/model"
)

func TestWriteResultCSV(t *testing.T) {
	engine, err := New(model.DefaultConfig())
	require.NoError(t, err)
	result := engine.Run()

	path := filepath.Join(t.TempDir(), "day.csv")
	require.NoError(t, WriteResultCSV(path, result))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus 24 hours for each strategy.
	require.Len(t, rows, 1+2*24)
	assert.Equal(t, "strategy", rows[0][0])
	assert.Equal(t, "action", rows[0][10])

	assert.Equal(t, "baseline", rows[1][0])
	assert.Equal(t, "smart", rows[25][0])
	assert.Equal(t, "0", rows[1][1])
	assert.Equal(t, "23", rows[24][1])

	// Baseline never cycles the battery.
	for _, row := range rows[1:25] {
		assert.Equal(t, string(model.ActionIdle), row[10])
	}

	// The smart run charges at midday and discharges in the evening,
	// so both actions must appear somewhere.
	actions := map[string]bool{}
	for _, row := range rows[25:] {
		actions[row[10]] = true
	}
	assert.True(t, actions[string(model.ActionCharging)])
	assert.True(t, actions[string(model.ActionDischarging)])
}

func TestWriteResultCSV_BadPath(t *testing.T) {
	engine, err := New(model.DefaultConfig())
	require.NoError(t, err)
	err = WriteResultCSV(filepath.Join(t.TempDir(), "missing", "day.csv"), engine.Run())
	assert.Error(t, err)
}
