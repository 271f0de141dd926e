package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	danger lipgloss.Color
	ok     lipgloss.Color
}

var (
	lightPalette = palette{text: "#1F2328", muted: "#6E7781", accent: "#0969DA", danger: "#CF222E", ok: "#1A7F37"}
	darkPalette  = palette{text: "#E6EDF3", muted: "#8B949E", accent: "#58A6FF", danger: "#F85149", ok: "#3FB950"}
)

// Renderer formats screens for the terminal. It implements
// services.Presenter so the theme service can switch its palette.
type Renderer struct {
	mu   sync.RWMutex
	dark bool
	p    palette
}

func NewRenderer() *Renderer {
	return &Renderer{p: lightPalette}
}

func (r *Renderer) SetDark(dark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dark = dark
	if dark {
		r.p = darkPalette
	} else {
		r.p = lightPalette
	}
}

func (r *Renderer) Dark() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dark
}

func (r *Renderer) palette() palette {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.p
}

func (r *Renderer) Title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(r.palette().accent).Render(s)
}

func (r *Renderer) Muted(s string) string {
	return lipgloss.NewStyle().Foreground(r.palette().muted).Render(s)
}

func (r *Renderer) Success(s string) string {
	return lipgloss.NewStyle().Foreground(r.palette().ok).Render(s)
}

func (r *Renderer) Danger(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(r.palette().danger).Render(s)
}

func (r *Renderer) field(label, value string) string {
	l := lipgloss.NewStyle().Width(14).Foreground(r.palette().muted).Render(label)
	v := lipgloss.NewStyle().Foreground(r.palette().text).Render(value)
	return l + v
}

// Profile renders the account screen.
func (r *Renderer) Profile(v *models.ProfileView) string {
	age := "n/a"
	if v.AgeKnown {
		age = fmt.Sprintf("%d years", v.Age)
	}
	avatar := "not set"
	if v.Avatar != "" {
		avatar = fmt.Sprintf("set (%s)", mimeOf(v.Avatar))
	}
	tests := "No data yet"
	if v.History.Status == models.HistoryAvailable {
		tests = fmt.Sprintf("%d", v.History.Count)
	}
	member := "n/a"
	if !v.User.CreatedAt.IsZero() {
		member = v.User.CreatedAt.Format("January 2006")
	}

	lines := []string{
		r.Title(displayName(v.User)),
		r.field("Email", v.User.Email),
		r.field("Phone", v.MaskedPhone),
		r.field("Age", age),
		r.field("Member since", member),
		r.field("Avatar", avatar),
		r.field("Theme", string(v.Theme)),
		r.field("Tests taken", tests),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.palette().muted).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Settings renders the settings screen sections.
func (r *Renderer) Settings(sections []models.SettingsSection) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		title := strings.ToUpper(s.Title)
		if s.Title == "Danger Zone" {
			b.WriteString(r.Danger(title))
		} else {
			b.WriteString(r.Muted(title))
		}
		b.WriteString("\n")
		for _, it := range s.Items {
			b.WriteString("  " + lipgloss.NewStyle().Bold(true).Foreground(r.palette().text).Render(it.Label))
			if it.Command != "" {
				b.WriteString(" " + r.Muted("("+it.Command+")"))
			}
			b.WriteString("\n    " + r.Muted(it.Description) + "\n")
		}
	}
	return b.String()
}

// History renders test records, newest last.
func (r *Renderer) History(recs []models.TestRecord) string {
	if len(recs) == 0 {
		return r.Muted("No data yet")
	}
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "%s  %-12s %6.1f\n", rec.TakenAt.Local().Format("2006-01-02 15:04"), rec.Kind, rec.Score)
	}
	return strings.TrimRight(b.String(), "\n")
}

func displayName(u models.User) string {
	if strings.TrimSpace(u.FullName) != "" {
		return u.FullName
	}
	return u.Email
}

// mimeOf extracts the media type of a data URL.
func mimeOf(dataURL string) string {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "unknown"
	}
	mime, _, _ := strings.Cut(rest, ";")
	return mime
}
