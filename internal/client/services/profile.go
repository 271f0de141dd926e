package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/client/display"
	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/storage"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

// ProfileService builds the account view for the logged-in user.
type ProfileService interface {
	// Load returns common.ErrUnauthenticated when nobody is logged in, and
	// (nil, nil) when the session points at a user that no longer exists.
	Load(ctx context.Context) (*models.ProfileView, error)
}

type profileService struct {
	repos *storage.Repositories
	log   logging.Logger
	now   func() time.Time
}

func NewProfileService(repos *storage.Repositories, log logging.Logger) ProfileService {
	return &profileService{repos: repos, log: log, now: time.Now}
}

func (s *profileService) Load(ctx context.Context) (*models.ProfileView, error) {
	userID, err := s.repos.Session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, common.ErrUnauthenticated
	}

	user, err := s.repos.Users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Debug(ctx, "session points at a missing user", "user", userID)
		return nil, nil
	}

	avatar, err := s.repos.Avatars.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	mode, err := s.repos.Theme.Get(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.repos.History.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	view := &models.ProfileView{
		User:        user.Public(),
		Avatar:      avatar,
		Theme:       mode,
		History:     models.NewHistoryStats(len(recs)),
		MaskedPhone: display.MaskPhone(user.Phone),
	}
	view.Age, view.AgeKnown = display.AgeFromDOB(user.DOB, s.now())
	return view, nil
}
