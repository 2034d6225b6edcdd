package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2025, 3, 7, 9, 30, 0, 0, time.Local))
	assert.Equal(t, "2025-03-07", got)
}

func TestBuildAgenda_DedupesTasksAcrossSources(t *testing.T) {
	day := time.Date(2025, 3, 7, 10, 0, 0, 0, time.Local)

	entries := []CalendarEntry{
		{TaskID: 10, Title: "Tokens", ProjectID: 1, ProjectName: "Design system", Deadline: day},
	}
	projects := []Project{
		{
			ID: 1, Name: "Design system",
			Tasks: []Task{
				{ID: 10, Title: "Tokens", Deadline: &day},
				{ID: 11, Title: "Docs", Deadline: &day},
			},
		},
	}

	agenda := BuildAgenda(entries, projects, nil, nil)
	require.Len(t, agenda["2025-03-07"], 2, "task 10 appears once despite both sources")

	ids := []int64{agenda["2025-03-07"][0].TaskID, agenda["2025-03-07"][1].TaskID}
	assert.ElementsMatch(t, []int64{10, 11}, ids)
}

func TestBuildAgenda_IncludesProjectDeadlines(t *testing.T) {
	deadline := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)
	projects := []Project{{ID: 2, Name: "Backend", Color: "#9ECE6A", Deadline: &deadline}}

	agenda := BuildAgenda(nil, projects, nil, nil)
	require.Len(t, agenda["2025-03-09"], 1)
	e := agenda["2025-03-09"][0]
	assert.Equal(t, EventProject, e.Kind)
	assert.Zero(t, e.TaskID)
	assert.Equal(t, "#9ECE6A", e.Color)
}

func TestBuildAgenda_WindowFilter(t *testing.T) {
	before := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	inside := time.Date(2025, 3, 7, 0, 0, 0, 0, time.Local)
	after := time.Date(2025, 3, 20, 0, 0, 0, 0, time.Local)

	entries := []CalendarEntry{
		{TaskID: 1, Deadline: before},
		{TaskID: 2, Deadline: inside},
		{TaskID: 3, Deadline: after},
	}
	from := time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	agenda := BuildAgenda(entries, nil, &from, &to)
	require.Len(t, agenda, 1)
	assert.Equal(t, int64(2), agenda["2025-03-07"][0].TaskID)
}

func TestAgendaDays_Sorted(t *testing.T) {
	d1 := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)
	d2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local)
	entries := []CalendarEntry{
		{TaskID: 1, Deadline: d1},
		{TaskID: 2, Deadline: d2},
	}

	agenda := BuildAgenda(entries, nil, nil, nil)
	assert.Equal(t, []string{"2025-03-02", "2025-03-09"}, AgendaDays(agenda))
}
