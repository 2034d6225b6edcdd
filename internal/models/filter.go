package models

import (
	"strings"
	"time"
)

// ProjectFilter selects which projects the dashboard shows.
type ProjectFilter string

const (
	FilterAll       ProjectFilter = "all"
	FilterActive    ProjectFilter = "active"
	FilterCompleted ProjectFilter = "completed"
	FilterOverdue   ProjectFilter = "overdue"
	FilterArchived  ProjectFilter = "archived"
)

// Filters is the dashboard's filter selection. Tag and TaskStatus are empty
// when inactive. Archived holds locally hidden project ids.
type Filters struct {
	Tag        string
	Project    ProjectFilter
	TaskStatus TaskStatus
	Archived   map[int64]bool
	Now        time.Time
}

// HasTag reports whether the task carries the tag, folding case. Interactive
// tag toggling matches case-insensitively even though creation dedupes
// case-sensitively.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// FilterProjects runs the dashboard pipeline: tag filter first, then project
// status, then task status within surviving projects. The order matters; the
// status stage may discard projects the tag stage kept. Input is not mutated.
func FilterProjects(projects []Project, f Filters) []Project {
	var out []Project
	for _, p := range projects {
		if f.Tag != "" {
			var matched []Task
			for _, t := range p.Tasks {
				if t.HasTag(f.Tag) {
					matched = append(matched, t)
				}
			}
			if len(matched) == 0 {
				continue
			}
			p.Tasks = matched
		}

		if !f.keepProject(p) {
			continue
		}

		if f.TaskStatus != "" {
			var matched []Task
			for _, t := range p.Tasks {
				if t.Status == f.TaskStatus {
					matched = append(matched, t)
				}
			}
			p.Tasks = matched
		}

		out = append(out, p)
	}
	return out
}

func (f Filters) keepProject(p Project) bool {
	archived := f.Archived[p.ID]

	// Locally archived projects only surface in the archived view.
	if f.Project == FilterArchived {
		return archived
	}
	if archived {
		return false
	}

	switch f.Project {
	case FilterActive:
		return p.Status == ProjectActive
	case FilterCompleted:
		return p.Status == ProjectCompleted
	case FilterOverdue:
		return p.Overdue(f.Now)
	default:
		return true
	}
}
