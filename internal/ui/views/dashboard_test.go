package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovach/ttm/internal/api"
	"github.com/dkovach/ttm/internal/i18n"
	"github.com/dkovach/ttm/internal/models"
	"github.com/dkovach/ttm/internal/store"
)

func newTestEnv(t *testing.T) Env {
	t.Helper()

	local, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	client := api.New("http://localhost:0", time.Second)
	return Env{
		API:     client,
		Session: store.NewSession(client, local),
		Local:   local,
		Tr:      i18n.New("en"),
	}
}

func TestDashboard_StaleLoadIsDiscarded(t *testing.T) {
	v := NewDashboardView(newTestEnv(t), "")
	v.gen = 2
	v.projects = []models.Project{{ID: 1, Name: "Current"}}

	v.Update(dashLoadedMsg{gen: 1, projects: []models.Project{{ID: 9, Name: "Stale"}}})

	require.Len(t, v.projects, 1)
	assert.Equal(t, "Current", v.projects[0].Name)

	v.Update(dashLoadedMsg{gen: 2, projects: []models.Project{{ID: 3, Name: "Fresh"}}})

	require.Len(t, v.projects, 1)
	assert.Equal(t, "Fresh", v.projects[0].Name)
}

func TestDashboard_LoadErrorKeepsPreviousProjects(t *testing.T) {
	v := NewDashboardView(newTestEnv(t), "")
	v.gen = 1
	v.projects = []models.Project{{ID: 1, Name: "Kept"}}

	v.Update(dashLoadedMsg{gen: 1, err: assert.AnError})

	assert.Equal(t, assert.AnError.Error(), v.errText)
	require.Len(t, v.projects, 1)
	assert.Equal(t, "Kept", v.projects[0].Name)
}

func TestDashboard_ArchivedProjectHiddenFromDefaultView(t *testing.T) {
	env := newTestEnv(t)
	v := NewDashboardView(env, "")
	v.projects = []models.Project{
		{ID: 1, Name: "Visible", Status: models.ProjectActive},
		{ID: 2, Name: "Hidden", Status: models.ProjectActive},
	}

	require.NoError(t, env.Local.ArchiveProject(2))

	vis := v.visible()
	require.Len(t, vis, 1)
	assert.Equal(t, "Visible", vis[0].Name)

	// The archived view shows only the hidden one.
	for i, f := range projectFilterOrder {
		if f == models.FilterArchived {
			v.projFilterIdx = i
		}
	}
	vis = v.visible()
	require.Len(t, vis, 1)
	assert.Equal(t, "Hidden", vis[0].Name)
}

func TestDashboard_NoticeClearsOnTick(t *testing.T) {
	v := NewDashboardView(newTestEnv(t), "project created")
	assert.Equal(t, "project created", v.notice)

	v.Update(clearNoticeMsg{})

	assert.Empty(t, v.notice)
}

func TestDashboard_CursorClampsAfterShrink(t *testing.T) {
	v := NewDashboardView(newTestEnv(t), "")
	v.gen = 1
	v.cursor = 4

	v.Update(dashLoadedMsg{gen: 1, projects: []models.Project{
		{ID: 1, Name: "Only", Status: models.ProjectActive},
	}})

	assert.Equal(t, 0, v.cursor)
}
