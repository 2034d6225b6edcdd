package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_ResolvesDottedPath(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "Loading...", tr.T("common.loading", nil))
}

func TestT_FallsBackToKey(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "common.doesNotExist", tr.T("common.doesNotExist", nil))
	assert.Equal(t, "no.such.tree", tr.T("no.such.tree", nil))
	assert.Equal(t, "common", tr.T("common", nil), "non-leaf paths fall back too")
}

func TestT_Interpolation(t *testing.T) {
	tr := New("en")
	got := tr.T("dashboard.completed", map[string]string{"name": "Ana"})
	assert.Equal(t, "Completed by Ana", got)

	got = tr.T("dashboard.taskCount", map[string]string{"count": "3"})
	assert.Equal(t, "3 tasks", got)
}

func TestT_MissingVarStaysVisible(t *testing.T) {
	tr := New("en")
	got := tr.T("dashboard.completed", nil)
	assert.Equal(t, "Completed by {{name}}", got)
}

func TestSetLanguage(t *testing.T) {
	tr := New("de")
	assert.Equal(t, "de", tr.Language())
	assert.Equal(t, "Laden...", tr.T("common.loading", nil))

	tr.SetLanguage("fr")
	assert.Equal(t, "en", tr.Language(), "unknown language falls back to English")
}
