package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/nvxprofile/internal/client/config"
	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/services"
	"github.com/dmitrijs2005/nvxprofile/internal/client/storage"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	repos  *storage.Repositories

	authService     services.AuthService
	profileService  services.ProfileService
	themeService    services.ThemeService
	avatarService   *services.AvatarService
	lifecycle       *services.LifecycleService
	deleteFlow      *services.DeleteFlow
	settingsService *services.SettingsService

	// settings-screen toggles, rebuilt on every visit
	toggles models.Settings

	renderer *Renderer
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the configured store and builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, storage.Options{
		Driver:      c.Driver,
		Path:        c.StorePath,
		RedisAddr:   c.RedisAddr,
		RedisHash:   c.RedisHash,
		PostgresDSN: c.PostgresDSN,
	})
	if err != nil {
		return nil, err
	}

	repos, err := storage.NewRepositories(store, c.KeyPrefix, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	log.Debug(ctx, "store opened", "driver", c.Driver, "stores", repos.PerUser.Names())
	return newApp(c, log, repos, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, repos *storage.Repositories, in io.Reader, out io.Writer) *App {
	a := &App{
		config:   c,
		log:      log,
		repos:    repos,
		toggles:  models.DefaultSettings(),
		renderer: NewRenderer(),
		reader:   bufio.NewReader(in),
		out:      out,
	}

	a.authService = services.NewAuthService(repos, log)
	a.profileService = services.NewProfileService(repos, log)
	a.themeService = services.NewThemeService(repos.Theme, prefersDark(c), a.renderer, log)
	a.avatarService = services.NewAvatarService(repos.Session, repos.Avatars, c.DecodeTimeout, log)
	a.lifecycle = services.NewLifecycleService(repos, a, log)
	a.deleteFlow = services.NewDeleteFlow(a.lifecycle)
	a.settingsService = services.NewSettingsService(repos, log)
	return a
}

// prefersDark returns the configured override, or probes the terminal
// background.
func prefersDark(c *config.Config) services.PreferenceQuery {
	if c.PrefersDark != nil {
		dark := *c.PrefersDark
		return func() bool { return dark }
	}
	return lipgloss.HasDarkBackground
}

// Reset drops in-memory state tied to the logged-in user.
func (a *App) Reset() {
	a.toggles = models.DefaultSettings()
	a.deleteFlow.Cancel()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.repos.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	id, err := a.repos.Session.Current(ctx)
	return err == nil && id != ""
}
