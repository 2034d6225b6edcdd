package models

import "time"

// IsActive reports whether a task is still being worked on, i.e. it can
// accept a submission. HELP_REQUESTED and DECLINED count as active: they are
// server-side detours from IN_PROGRESS, not terminal states.
func (s TaskStatus) IsActive() bool {
	switch s {
	case TaskNew, TaskInProgress, TaskHelpRequested, TaskDeclined:
		return true
	}
	return false
}

// IsTerminal reports whether a task has reached its final state.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskCompleted
}

// CanSubmit reports whether user may move the task to SUBMITTED. Only the
// assignee can submit, and only while the task is active.
func CanSubmit(task Task, user *User) bool {
	if user == nil || task.AssignedTo == nil || task.AssignedTo.ID != user.ID {
		return false
	}
	return task.Status.IsActive()
}

// CanComplete reports whether an admin may mark the task COMPLETED. Valid
// from SUBMITTED or any active status; approving a submission and completing
// outright are the same underlying operation.
func CanComplete(s TaskStatus) bool {
	return !s.IsTerminal()
}

// CanReopen reports whether an admin may return the task to an active state.
func CanReopen(s TaskStatus) bool {
	return s == TaskSubmitted || s == TaskCompleted
}

// Submit applies the SUBMITTED transition locally. Callers use this as an
// optimistic patch; the re-fetched server state stays authoritative.
func (t *Task) Submit(by User, at time.Time) {
	t.Status = TaskSubmitted
	t.SubmittedAt = &at
	t.SubmittedBy = &by
}

// Complete applies the COMPLETED transition locally.
func (t *Task) Complete(by User, at time.Time) {
	t.Status = TaskCompleted
	t.CompletedAt = &at
	t.CompletedBy = &by
}

// Reopen returns the task to IN_PROGRESS and clears the submission and
// completion stamps, so a reopened task never shows stale sign-off data.
func (t *Task) Reopen() {
	t.Status = TaskInProgress
	t.SubmittedAt = nil
	t.SubmittedBy = nil
	t.CompletedAt = nil
	t.CompletedBy = nil
}

// Complete marks the project COMPLETED with a completion stamp. Admin-only;
// the check lives in the views since only admins see the control.
func (p *Project) Complete(by User, at time.Time) {
	p.Status = ProjectCompleted
	p.CompletedAt = &at
	p.CompletedBy = &by
}

// Reopen returns the project to ACTIVE and clears the completion stamp.
func (p *Project) Reopen() {
	p.Status = ProjectActive
	p.CompletedAt = nil
	p.CompletedBy = nil
}

// Overdue reports whether the project deadline has passed without completion.
func (p Project) Overdue(now time.Time) bool {
	return p.Deadline != nil && p.Deadline.Before(now) && p.Status != ProjectCompleted
}
