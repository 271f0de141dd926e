package cli

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_Profile(t *testing.T) {
	r := NewRenderer()
	view := &models.ProfileView{
		User:        models.User{FullName: "Ada", Email: "ada@example.org", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		Avatar:      "data:image/jpeg;base64,AAA",
		Theme:       models.ThemeDark,
		History:     models.NewHistoryStats(2),
		Age:         30,
		AgeKnown:    true,
		MaskedPhone: "••••••1234",
	}

	s := r.Profile(view)
	for _, want := range []string{"Ada", "ada@example.org", "30 years", "March 2024", "set (image/jpeg)", "dark", "••••••1234"} {
		assert.Contains(t, s, want)
	}
}

func TestRenderer_SetDark(t *testing.T) {
	r := NewRenderer()
	assert.False(t, r.Dark())
	r.SetDark(true)
	assert.True(t, r.Dark())
	assert.Equal(t, darkPalette, r.palette())
}

func TestRenderer_HistoryEmpty(t *testing.T) {
	assert.Contains(t, NewRenderer().History(nil), "No data yet")
}

func TestMimeOf(t *testing.T) {
	assert.Equal(t, "image/gif", mimeOf("data:image/gif;base64,R0lG"))
	assert.Equal(t, "unknown", mimeOf("https://example.org/a.gif"))
}
