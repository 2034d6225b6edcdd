package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkovach/ttm/internal/models"
)

// ProjectTasks lists the tasks of one project.
func (c *Client) ProjectTasks(ctx context.Context, projectID int64) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/project/%d", projectID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SubmitTask moves an active task assigned to the caller to SUBMITTED.
func (c *Client) SubmitTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/submit", id), nil, nil)
}

// CompleteTask marks a task COMPLETED. Approving a submission and completing
// an active task share this endpoint.
func (c *Client) CompleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/complete", id), nil, nil)
}

// ReopenTask returns a SUBMITTED or COMPLETED task to an active state.
func (c *Client) ReopenTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/reopen", id), nil, nil)
}

// RateTask submits performance scores for the task's assignee.
func (c *Client) RateTask(ctx context.Context, id int64, rating models.Rating) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/rate", id), rating, nil)
}
