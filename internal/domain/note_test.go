package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatusNotes_Array(t *testing.T) {
	notes := DecodeStatusNotes(json.RawMessage(`[{"id":"a","content":"one"},{"id":"b","content":"two"}]`))
	require.Len(t, notes, 2)
	assert.Equal(t, "one", notes[0].Content)
}

func TestDecodeStatusNotes_StringWrapped(t *testing.T) {
	notes := DecodeStatusNotes(json.RawMessage(`"[{\"id\":\"a\",\"content\":\"one\"}]"`))
	require.Len(t, notes, 1)
	assert.Equal(t, "a", notes[0].ID)
}

func TestDecodeStatusNotes_Tolerant(t *testing.T) {
	assert.Nil(t, DecodeStatusNotes(nil))
	assert.Nil(t, DecodeStatusNotes(json.RawMessage(``)))
	assert.Nil(t, DecodeStatusNotes(json.RawMessage(`42`)))
	assert.Nil(t, DecodeStatusNotes(json.RawMessage(`"not json inside"`)))
	assert.Nil(t, DecodeStatusNotes(json.RawMessage(`{broken`)))
}

func TestContractExhausted_NilSafe(t *testing.T) {
	var c *Contract
	assert.False(t, c.Exhausted())
	assert.Equal(t, float64(0), c.MonthlyUsagePct())

	c = &Contract{AdjustedTasks: 0.5}
	assert.False(t, c.Exhausted())

	c.AdjustedTasks = 0
	assert.True(t, c.Exhausted())

	c.AdjustedTasks = -1
	assert.True(t, c.Exhausted())
}

func TestContractMonthlyUsagePct(t *testing.T) {
	c := &Contract{TasksPerMonth: 10, UsedThisMonth: 2.5}
	assert.InDelta(t, 25, c.MonthlyUsagePct(), 0.001)

	c.UsedThisMonth = 40
	assert.Equal(t, float64(100), c.MonthlyUsagePct())

	c.TasksPerMonth = 0
	assert.Equal(t, float64(0), c.MonthlyUsagePct())
}

func TestSummarizeTaskHistory(t *testing.T) {
	summary := SummarizeTaskHistory([]TaskEntry{
		{TaskType: TaskTypeSupport, TaskValue: 1},
		{TaskType: TaskTypeSupport, TaskValue: 0.5},
		{TaskType: TaskTypeBug, TaskValue: 1},
		{TaskType: TaskTypeReferral, TaskValue: -2},
	})

	assert.Equal(t, 4, summary.TotalEntries)
	assert.InDelta(t, 0.5, summary.NetValue, 0.001)
	assert.Equal(t, 2, summary.Support)
	assert.Equal(t, 1, summary.Bugs)
	assert.Equal(t, 0, summary.Projects)
	assert.Equal(t, 1, summary.Referrals)
}
