package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovach/ttm/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 2*time.Second)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	client.SetToken("secret-token")

	_, err := client.MyProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := client.MyProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorFromJSONMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"admins only"}`))
	})

	err := client.DeleteProject(context.Background(), 4)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "admins only", apiErr.Message)
	assert.Equal(t, "admins only", err.Error())
}

func TestClient_ErrorFallsBackToRawBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	err := client.DeleteProject(context.Background(), 4)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestClient_ErrorWithEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.DeleteProject(context.Background(), 4)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		w.Write([]byte(`{"user":{"id":1,"email":"ana@example.com","name":"Ana","role":"ADMIN"},"token":"tok-1"}`))
	})

	resp, err := client.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestClient_CreateProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects", r.URL.Path)

		var draft models.ProjectDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Launch", draft.Name)
		require.Len(t, draft.Tasks, 1)

		w.Write([]byte(`{"id":9,"name":"Launch","color":"#7AA2F7","status":"ACTIVE","createdAt":"2025-06-01T00:00:00Z","tasks":[{"id":90,"title":"Ship","status":"NEW","tags":["Ops"]}]}`))
	})

	project, err := client.CreateProject(context.Background(), models.ProjectDraft{
		Name:     "Launch",
		Color:    "#7AA2F7",
		Deadline: "2025-06-10",
		Tasks:    []models.TaskDraft{{Title: "Ship", Deadline: "2025-06-10", Tags: []string{"Ops"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), project.ID)
	require.Len(t, project.Tasks, 1)
	assert.Equal(t, models.TaskNew, project.Tasks[0].Status)
}

func TestClient_MyCalendarWindowParams(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	_, err := client.MyCalendar(context.Background(), &from, &to)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T00:00:00Z", gotQuery["from"][0])
	assert.Equal(t, "2025-03-31T00:00:00Z", gotQuery["to"][0])

	_, err = client.MyCalendar(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery["from"])
}

func TestClient_RequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := New(server.URL, 50*time.Millisecond)
	_, err := client.MyProjects(context.Background())
	assert.Error(t, err)
}
