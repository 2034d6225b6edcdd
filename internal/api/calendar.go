package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dkovach/ttm/internal/models"
)

// MyCalendar fetches the caller's task deadlines, optionally limited to the
// [from, to] window.
func (c *Client) MyCalendar(ctx context.Context, from, to *time.Time) ([]models.CalendarEntry, error) {
	query := url.Values{}
	if from != nil {
		query.Set("from", from.Format(time.RFC3339))
	}
	if to != nil {
		query.Set("to", to.Format(time.RFC3339))
	}

	path := "/calendar/me"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var entries []models.CalendarEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
