package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() ProjectDraft {
	return ProjectDraft{
		Name:     "Website relaunch",
		Color:    "#7aa2f7",
		Deadline: "2025-06-10",
		Tasks: []TaskDraft{
			{Title: "Wireframes", Deadline: "2025-06-01", Tags: []string{"Design"}},
			{Title: "Copy review", Deadline: "2025-06-05", Tags: []string{"Content"}},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	d := validDraft()
	require.NoError(t, d.Validate())
	assert.Equal(t, "#7AA2F7", d.Color, "color normalized to uppercase")
}

func TestValidate_MissingProjectDeadline(t *testing.T) {
	d := validDraft()
	d.Deadline = ""
	assert.ErrorContains(t, d.Validate(), "deadline is required")

	d = validDraft()
	d.Deadline = "soonish"
	assert.ErrorContains(t, d.Validate(), "not a valid date")
}

func TestValidate_TaskDeadlineAfterProject(t *testing.T) {
	d := ProjectDraft{
		Name:     "Launch",
		Color:    "#9ECE6A",
		Deadline: "2025-06-01",
		Tasks: []TaskDraft{
			{Title: "Prep", Deadline: "2025-05-20", Tags: []string{"Ops"}},
			{Title: "Ship", Deadline: "2025-06-02", Tags: []string{"Ops"}},
		},
	}
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 2", "error names the failing task's 1-based index")
}

func TestValidate_TaskDeadlineEqualsProject(t *testing.T) {
	// The rule is <=, so the boundary case passes.
	d := ProjectDraft{
		Name:     "Launch",
		Color:    "#9ECE6A",
		Deadline: "2025-06-01",
		Tasks:    []TaskDraft{{Title: "Ship", Deadline: "2025-06-01", Tags: []string{"Ops"}}},
	}
	assert.NoError(t, d.Validate())
}

func TestValidate_ShortCircuitsOnFirstFailure(t *testing.T) {
	d := validDraft()
	d.Tasks[0].Title = "   "
	d.Tasks[1].Tags = nil
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 1 needs a title")
}

func TestValidate_TaskNeedsTags(t *testing.T) {
	d := validDraft()
	d.Tasks[0].Tags = []string{"  ", ""}
	assert.ErrorContains(t, d.Validate(), "task 1 needs at least one tag")
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Design ", "Design", "design", "", "QA"})
	// Dedup is case-sensitive at creation time.
	assert.Equal(t, []string{"Design", "design", "QA"}, got)
}
