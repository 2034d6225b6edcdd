package models

import (
	"sort"
	"time"
)

// EventKind distinguishes task deadlines from project deadlines on the agenda.
type EventKind int

const (
	EventTask EventKind = iota
	EventProject
)

// Event is one agenda entry on a calendar day.
type Event struct {
	Kind        EventKind
	TaskID      int64 // zero for project events
	ProjectID   int64
	Title       string
	ProjectName string
	Color       string
	Deadline    time.Time
}

// DayKey renders a timestamp as the canonical yyyy-MM-dd bucket key in the
// viewer's local timezone.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// BuildAgenda groups deadlines into day buckets from two sources: the
// caller's calendar feed and their project list. Tasks appearing in both are
// deduplicated by id, with the calendar feed winning. Events outside the
// optional [from, to] window are dropped. Buckets keep deadline order.
func BuildAgenda(entries []CalendarEntry, projects []Project, from, to *time.Time) map[string][]Event {
	inWindow := func(t time.Time) bool {
		if from != nil && t.Before(*from) {
			return false
		}
		if to != nil && t.After(*to) {
			return false
		}
		return true
	}

	var events []Event
	seenTasks := make(map[int64]bool)

	for _, e := range entries {
		if !inWindow(e.Deadline) {
			continue
		}
		seenTasks[e.TaskID] = true
		events = append(events, Event{
			Kind:        EventTask,
			TaskID:      e.TaskID,
			ProjectID:   e.ProjectID,
			Title:       e.Title,
			ProjectName: e.ProjectName,
			Deadline:    e.Deadline,
		})
	}

	for _, p := range projects {
		if p.Deadline != nil && inWindow(*p.Deadline) {
			events = append(events, Event{
				Kind:        EventProject,
				ProjectID:   p.ID,
				Title:       p.Name,
				ProjectName: p.Name,
				Color:       p.Color,
				Deadline:    *p.Deadline,
			})
		}
		for _, t := range p.Tasks {
			if t.Deadline == nil || seenTasks[t.ID] || !inWindow(*t.Deadline) {
				continue
			}
			seenTasks[t.ID] = true
			events = append(events, Event{
				Kind:        EventTask,
				TaskID:      t.ID,
				ProjectID:   p.ID,
				Title:       t.Title,
				ProjectName: p.Name,
				Color:       p.Color,
				Deadline:    *t.Deadline,
			})
		}
	}

	agenda := make(map[string][]Event)
	for _, e := range events {
		key := DayKey(e.Deadline)
		agenda[key] = append(agenda[key], e)
	}
	for _, day := range agenda {
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].Deadline.Before(day[j].Deadline)
		})
	}
	return agenda
}

// AgendaDays returns the bucket keys in ascending order.
func AgendaDays(agenda map[string][]Event) []string {
	days := make([]string, 0, len(agenda))
	for day := range agenda {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}
