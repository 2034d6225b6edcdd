package models

import "time"

// Role is a user's role within the workspace.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// User is a registered account as returned by the API.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// ProjectStatus is the server-side lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// Project groups tasks under a shared deadline and color.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Color       string        `json:"color"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	Status      ProjectStatus `json:"status"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	CompletedBy *User         `json:"completedBy,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Tasks       []Task        `json:"tasks"`
}

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskNew           TaskStatus = "NEW"
	TaskInProgress    TaskStatus = "IN_PROGRESS"
	TaskSubmitted     TaskStatus = "SUBMITTED"
	TaskHelpRequested TaskStatus = "HELP_REQUESTED"
	TaskDeclined      TaskStatus = "DECLINED"
	TaskCompleted     TaskStatus = "COMPLETED"
)

// Task is a single unit of work within a project.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Tags        []string   `json:"tags"`
	AssignedTo  *User      `json:"assignedTo,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	SubmittedBy *User      `json:"submittedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy *User      `json:"completedBy,omitempty"`
}

// Colleague is an invited email contact, optionally linked to a registered
// account. Unlinked colleagues cannot be assigned work.
type Colleague struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	Contact  *User           `json:"contact,omitempty"`
	Projects []Project       `json:"projects"`
	Tasks    []Task          `json:"tasks"`
	Lists    []ColleagueList `json:"lists"`
}

// ColleagueList is a named group used to narrow the assignee picker.
type ColleagueList struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Members []int64 `json:"members"`
}

// Rating holds the three 1-10 scores a colleague receives for finished work.
type Rating struct {
	Punctuality int `json:"punctuality"`
	Teamwork    int `json:"teamwork"`
	Quality     int `json:"quality"`
}

// Valid reports whether every score is within the accepted 1-10 range.
func (r Rating) Valid() bool {
	for _, s := range []int{r.Punctuality, r.Teamwork, r.Quality} {
		if s < 1 || s > 10 {
			return false
		}
	}
	return true
}

// TagPerformance aggregates ratings received for tasks carrying a tag.
type TagPerformance struct {
	Tag     string  `json:"tag"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// CalendarEntry is one task deadline from the caller's calendar feed.
type CalendarEntry struct {
	TaskID      int64     `json:"taskId"`
	Title       string    `json:"title"`
	ProjectID   int64     `json:"projectId"`
	ProjectName string    `json:"projectName"`
	Deadline    time.Time `json:"deadline"`
}
