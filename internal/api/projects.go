package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkovach/ttm/internal/models"
)

// MyProjects fetches projects where the caller is admin or member.
func (c *Client) MyProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects/mine", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ArchivedProjects fetches projects archived on the server side.
func (c *Client) ArchivedProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects/archived", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject submits a validated draft with its initial tasks.
func (c *Client) CreateProject(ctx context.Context, draft models.ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// SetProjectStatus flips a project between ACTIVE and COMPLETED.
func (c *Client) SetProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	body := map[string]models.ProjectStatus{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d/status", id), body, nil)
}

// DeleteProject permanently deletes a project and its tasks.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

// Invitation is a shareable invite created for an email address.
type Invitation struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// InviteToProject creates an email invite and returns the shareable link.
func (c *Client) InviteToProject(ctx context.Context, projectID int64, email string) (*Invitation, error) {
	body := map[string]string{"email": email}
	var inv Invitation
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/invitations", projectID), body, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// AcceptInvite redeems an invite token for the current user.
func (c *Client) AcceptInvite(ctx context.Context, token string) (*models.Project, error) {
	body := map[string]string{"token": token}
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects/invitations/accept", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// RateProject submits performance scores for a colleague on a completed project.
func (c *Client) RateProject(ctx context.Context, projectID, colleagueID int64, rating models.Rating) error {
	body := struct {
		ColleagueID int64 `json:"colleagueId"`
		models.Rating
	}{ColleagueID: colleagueID, Rating: rating}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/rate", projectID), body, nil)
}
