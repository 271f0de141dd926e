package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/storage"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/cryptox"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
	"github.com/google/uuid"
)

// Registration carries the fields collected by the register command.
type Registration struct {
	FullName string
	Email    string
	Phone    string
	DOB      string
	Password []byte
}

// AuthService creates users and sets the session pointer. Passwords are
// checked against the salt and verifier stored on the user record.
type AuthService interface {
	Register(ctx context.Context, reg Registration) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
}

type authService struct {
	repos *storage.Repositories
	log   logging.Logger
	now   func() time.Time
}

func NewAuthService(repos *storage.Repositories, log logging.Logger) AuthService {
	return &authService{repos: repos, log: log, now: time.Now}
}

// Register stores a new user and logs them in.
func (a *authService) Register(ctx context.Context, reg Registration) (*models.User, error) {
	salt, verifier := cryptox.NewPasswordFields(reg.Password)

	u := &models.User{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(reg.FullName),
		Email:     strings.TrimSpace(reg.Email),
		Phone:     strings.TrimSpace(reg.Phone),
		DOB:       strings.TrimSpace(reg.DOB),
		Salt:      salt,
		Verifier:  verifier,
		CreatedAt: a.now().UTC(),
	}
	if err := a.repos.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	if err := a.repos.Session.Set(ctx, u.ID); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user registered", "user", u.ID)
	pub := u.Public()
	return &pub, nil
}

// Login checks the password and sets the session pointer. Unknown email and
// wrong password both yield common.ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	u, err := a.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !cryptox.CheckPassword(password, u.Salt, u.Verifier) {
		return nil, common.ErrInvalidCredentials
	}
	if err := a.repos.Session.Set(ctx, u.ID); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "user", u.ID)
	pub := u.Public()
	return &pub, nil
}
