package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects(now time.Time) []Project {
	past := now.Add(-72 * time.Hour)
	future := now.Add(72 * time.Hour)
	return []Project{
		{
			ID: 1, Name: "Design system", Status: ProjectActive, Deadline: &future,
			Tasks: []Task{
				{ID: 10, Title: "Tokens", Status: TaskNew, Tags: []string{"Design"}},
				{ID: 11, Title: "Docs", Status: TaskInProgress, Tags: []string{"Content"}},
			},
		},
		{
			ID: 2, Name: "Backend", Status: ProjectActive, Deadline: &past,
			Tasks: []Task{
				{ID: 20, Title: "API", Status: TaskSubmitted, Tags: []string{"Go"}},
			},
		},
		{
			ID: 3, Name: "Old site", Status: ProjectCompleted, Deadline: &past,
			Tasks: []Task{
				{ID: 30, Title: "Shutdown", Status: TaskCompleted, Tags: []string{"Ops"}},
			},
		},
	}
}

func TestFilterProjects_TagIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	got := FilterProjects(sampleProjects(now), Filters{Tag: "design", Project: FilterAll, Now: now})

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	require.Len(t, got[0].Tasks, 1, "only the matching task is retained")
	assert.Equal(t, int64(10), got[0].Tasks[0].ID)
}

func TestFilterProjects_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	projects := sampleProjects(now)
	FilterProjects(projects, Filters{Tag: "design", Project: FilterAll, Now: now})
	assert.Len(t, projects[0].Tasks, 2)
}

func TestFilterProjects_StatusViews(t *testing.T) {
	now := time.Now()
	projects := sampleProjects(now)

	active := FilterProjects(projects, Filters{Project: FilterActive, Now: now})
	assert.Len(t, active, 2)

	completed := FilterProjects(projects, Filters{Project: FilterCompleted, Now: now})
	require.Len(t, completed, 1)
	assert.Equal(t, int64(3), completed[0].ID)

	// Overdue is derived: deadline passed and not completed.
	overdue := FilterProjects(projects, Filters{Project: FilterOverdue, Now: now})
	require.Len(t, overdue, 1)
	assert.Equal(t, int64(2), overdue[0].ID)
}

func TestFilterProjects_ArchivedHiddenFromOtherViews(t *testing.T) {
	now := time.Now()
	archived := map[int64]bool{2: true}

	all := FilterProjects(sampleProjects(now), Filters{Project: FilterAll, Archived: archived, Now: now})
	assert.Len(t, all, 2)
	for _, p := range all {
		assert.NotEqual(t, int64(2), p.ID)
	}

	only := FilterProjects(sampleProjects(now), Filters{Project: FilterArchived, Archived: archived, Now: now})
	require.Len(t, only, 1)
	assert.Equal(t, int64(2), only[0].ID)
}

func TestFilterProjects_TaskStatusWithinProjects(t *testing.T) {
	now := time.Now()
	got := FilterProjects(sampleProjects(now), Filters{Project: FilterActive, TaskStatus: TaskNew, Now: now})

	require.Len(t, got, 2)
	assert.Len(t, got[0].Tasks, 1)
	assert.Empty(t, got[1].Tasks)
}

func TestFilterProjects_TagRunsBeforeStatus(t *testing.T) {
	// A tag match inside a completed project must not leak into the active
	// view: the status stage still applies after the tag stage.
	now := time.Now()
	got := FilterProjects(sampleProjects(now), Filters{Tag: "ops", Project: FilterActive, Now: now})
	assert.Empty(t, got)
}
