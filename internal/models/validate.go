package models

import (
	"fmt"
	"strings"
)

// Palette is the fixed set of project color swatches.
var Palette = []string{
	"#7AA2F7", "#BB9AF7", "#7DCFFF", "#9ECE6A", "#E0AF68", "#F7768E",
}

// TaskDraft is an unsubmitted task on the create-project form.
type TaskDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Deadline    string   `json:"deadline"`
	Tags        []string `json:"tags"`
}

// ProjectDraft is an unsubmitted project.
type ProjectDraft struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Color       string      `json:"color"`
	Deadline    string      `json:"deadline"`
	Tasks       []TaskDraft `json:"tasks"`
}

// NormalizeTags trims entries and drops duplicates and blanks. Deduplication
// is case-sensitive here; only interactive tag toggling folds case.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Validate checks the draft before submission and normalizes it in place:
// tags are deduped and the color is uppercased. Checks run in order and stop
// at the first failing task, reporting its 1-based position.
func (d *ProjectDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.TrimSpace(d.Deadline) == "" {
		return fmt.Errorf("project deadline is required")
	}
	projectDeadline, err := ParseDeadline(d.Deadline)
	if err != nil {
		return fmt.Errorf("project deadline is not a valid date: %q", d.Deadline)
	}

	for i := range d.Tasks {
		t := &d.Tasks[i]
		n := i + 1

		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			return fmt.Errorf("task %d needs a title", n)
		}

		t.Tags = NormalizeTags(t.Tags)
		if len(t.Tags) == 0 {
			return fmt.Errorf("task %d needs at least one tag", n)
		}

		if strings.TrimSpace(t.Deadline) == "" {
			return fmt.Errorf("task %d needs a deadline", n)
		}
		taskDeadline, err := ParseDeadline(t.Deadline)
		if err != nil {
			return fmt.Errorf("task %d has an invalid deadline: %q", n, t.Deadline)
		}
		if taskDeadline.After(projectDeadline) {
			return fmt.Errorf("task %d deadline is after the project deadline", n)
		}
	}

	d.Color = strings.ToUpper(strings.TrimSpace(d.Color))
	return nil
}
