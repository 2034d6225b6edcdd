package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_IsActive(t *testing.T) {
	assert.True(t, TaskNew.IsActive())
	assert.True(t, TaskInProgress.IsActive())
	assert.True(t, TaskHelpRequested.IsActive())
	assert.True(t, TaskDeclined.IsActive())
	assert.False(t, TaskSubmitted.IsActive())
	assert.False(t, TaskCompleted.IsActive())

	assert.True(t, TaskCompleted.IsTerminal())
	assert.False(t, TaskSubmitted.IsTerminal(), "submitted work can still be declined")
}

func TestCanSubmit(t *testing.T) {
	me := &User{ID: 7, Role: RoleMember}
	other := &User{ID: 8}

	task := Task{Status: TaskInProgress, AssignedTo: me}
	assert.True(t, CanSubmit(task, me))

	assert.False(t, CanSubmit(task, other), "only the assignee can submit")
	assert.False(t, CanSubmit(task, nil))
	assert.False(t, CanSubmit(Task{Status: TaskInProgress}, me), "unassigned task")

	task.Status = TaskSubmitted
	assert.False(t, CanSubmit(task, me))
	task.Status = TaskCompleted
	assert.False(t, CanSubmit(task, me))
}

func TestCanComplete(t *testing.T) {
	assert.True(t, CanComplete(TaskSubmitted))
	assert.True(t, CanComplete(TaskNew))
	assert.True(t, CanComplete(TaskInProgress))
	assert.False(t, CanComplete(TaskCompleted))
}

func TestCanReopen(t *testing.T) {
	assert.True(t, CanReopen(TaskSubmitted))
	assert.True(t, CanReopen(TaskCompleted))
	assert.False(t, CanReopen(TaskNew))
	assert.False(t, CanReopen(TaskInProgress))
}

func TestTask_ReopenThenSubmitAgain(t *testing.T) {
	me := User{ID: 3}
	now := time.Now()

	task := Task{Status: TaskInProgress, AssignedTo: &me}
	task.Submit(me, now)
	assert.Equal(t, TaskSubmitted, task.Status)
	assert.NotNil(t, task.SubmittedAt)

	// A reopened task must satisfy the submit precondition again.
	task.Reopen()
	assert.True(t, task.Status.IsActive())
	assert.Nil(t, task.SubmittedAt)
	assert.Nil(t, task.SubmittedBy)
	assert.True(t, CanSubmit(task, &me))
}

func TestTask_ReopenClearsCompletion(t *testing.T) {
	admin := User{ID: 1, Role: RoleAdmin}
	task := Task{Status: TaskSubmitted}
	task.Complete(admin, time.Now())
	assert.Equal(t, TaskCompleted, task.Status)

	task.Reopen()
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.CompletedBy)
}

func TestProject_CompleteAndReopen(t *testing.T) {
	admin := User{ID: 1, Role: RoleAdmin}
	now := time.Now()

	p := Project{Status: ProjectActive}
	p.Complete(admin, now)
	assert.Equal(t, ProjectCompleted, p.Status)
	assert.NotNil(t, p.CompletedAt)

	p.Reopen()
	assert.Equal(t, ProjectActive, p.Status)
	assert.Nil(t, p.CompletedAt)
	assert.Nil(t, p.CompletedBy)
}

func TestProject_Overdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)

	assert.False(t, Project{Status: ProjectActive}.Overdue(now), "no deadline")
	assert.True(t, Project{Status: ProjectActive, Deadline: &past}.Overdue(now))
	assert.False(t, Project{Status: ProjectCompleted, Deadline: &past}.Overdue(now),
		"completed projects are never overdue")
}
