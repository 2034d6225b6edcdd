package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkovach/ttm/internal/models"
)

// Colleagues fetches the caller's invited contact roster.
func (c *Client) Colleagues(ctx context.Context) ([]models.Colleague, error) {
	var colleagues []models.Colleague
	if err := c.do(ctx, http.MethodGet, "/colleagues", nil, &colleagues); err != nil {
		return nil, err
	}
	return colleagues, nil
}

// AddColleague invites an email address to the roster.
func (c *Client) AddColleague(ctx context.Context, email string) (*models.Colleague, error) {
	body := map[string]string{"email": email}
	var colleague models.Colleague
	if err := c.do(ctx, http.MethodPost, "/colleagues", body, &colleague); err != nil {
		return nil, err
	}
	return &colleague, nil
}

// DeleteColleague removes a colleague from the roster.
func (c *Client) DeleteColleague(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/colleagues/%d", id), nil, nil)
}

// ColleagueLists fetches the named colleague groups.
func (c *Client) ColleagueLists(ctx context.Context) ([]models.ColleagueList, error) {
	var lists []models.ColleagueList
	if err := c.do(ctx, http.MethodGet, "/colleagues/lists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateColleagueList creates a named group.
func (c *Client) CreateColleagueList(ctx context.Context, name string) (*models.ColleagueList, error) {
	body := map[string]string{"name": name}
	var list models.ColleagueList
	if err := c.do(ctx, http.MethodPost, "/colleagues/lists", body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteColleagueList deletes a group; memberships go with it.
func (c *Client) DeleteColleagueList(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/colleagues/lists/%d", id), nil, nil)
}

// AddListMember adds a colleague to a group.
func (c *Client) AddListMember(ctx context.Context, listID, colleagueID int64) error {
	body := map[string]int64{"colleagueId": colleagueID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/colleagues/lists/%d/members", listID), body, nil)
}

// RemoveListMember removes a colleague from a group.
func (c *Client) RemoveListMember(ctx context.Context, listID, colleagueID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/colleagues/lists/%d/members/%d", listID, colleagueID), nil, nil)
}

// ColleaguePerformance fetches the per-tag rating aggregates for a colleague.
func (c *Client) ColleaguePerformance(ctx context.Context, id int64) ([]models.TagPerformance, error) {
	var perf []models.TagPerformance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/colleagues/%d/performance", id), nil, &perf); err != nil {
		return nil, err
	}
	return perf, nil
}

// AssignProject assigns a project to a colleague with a linked account.
func (c *Client) AssignProject(ctx context.Context, colleagueID, projectID int64) error {
	body := map[string]int64{"projectId": projectID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/colleagues/%d/assign-project", colleagueID), body, nil)
}

// AssignTask assigns a task to a colleague with a linked account.
func (c *Client) AssignTask(ctx context.Context, colleagueID, taskID int64) error {
	body := map[string]int64{"taskId": taskID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/colleagues/%d/assign-task", colleagueID), body, nil)
}
