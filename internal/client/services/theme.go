package services

import (
	"context"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/theme"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

// PreferenceQuery reports whether the environment prefers a dark
// appearance. Consulted only for the "system" mode.
type PreferenceQuery func() bool

// Presenter receives the effective appearance.
type Presenter interface {
	SetDark(dark bool)
}

type ThemeService interface {
	// SetMode validates and persists mode, then applies the resulting
	// appearance. It returns whether dark was applied.
	SetMode(ctx context.Context, mode models.ThemeMode) (bool, error)
	// Current returns the persisted mode, light when unset.
	Current(ctx context.Context) (models.ThemeMode, error)
	// Apply re-applies the persisted mode, e.g. at startup.
	Apply(ctx context.Context) (bool, error)
}

type themeService struct {
	repo        theme.Repository
	prefersDark PreferenceQuery
	presenter   Presenter
	log         logging.Logger
}

// NewThemeService wires the theme repository to a presenter. A nil
// prefersDark reads as "light preferred"; a nil presenter is allowed.
func NewThemeService(repo theme.Repository, prefersDark PreferenceQuery, presenter Presenter, log logging.Logger) ThemeService {
	if prefersDark == nil {
		prefersDark = func() bool { return false }
	}
	return &themeService{repo: repo, prefersDark: prefersDark, presenter: presenter, log: log}
}

func (s *themeService) SetMode(ctx context.Context, mode models.ThemeMode) (bool, error) {
	if err := s.repo.Set(ctx, mode); err != nil {
		return false, err
	}
	dark := s.apply(mode)
	s.log.Info(ctx, "theme changed", "mode", mode, "dark", dark)
	return dark, nil
}

func (s *themeService) Current(ctx context.Context) (models.ThemeMode, error) {
	return s.repo.Get(ctx)
}

func (s *themeService) Apply(ctx context.Context) (bool, error) {
	mode, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	return s.apply(mode), nil
}

func (s *themeService) apply(mode models.ThemeMode) bool {
	var dark bool
	switch mode {
	case models.ThemeDark:
		dark = true
	case models.ThemeSystem:
		dark = s.prefersDark()
	}
	if s.presenter != nil {
		s.presenter.SetDark(dark)
	}
	return dark
}
