package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nvxprofile/internal/client/services"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Register prompts for the profile fields and a password, creates the
// account and logs it in. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	var reg services.Registration
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Full name", &reg.FullName},
		{"Enter email", &reg.Email},
		{"Phone (optional)", &reg.Phone},
		{"Date of birth, YYYY-MM-DD (optional)", &reg.DOB},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = password

	u, err := a.authService.Register(ctx, reg)
	if err != nil {
		return err
	}

	a.Reset()
	fmt.Fprintln(a.out, a.renderer.Success("Welcome, "+displayName(*u)+"!"))
	return nil
}

// Login prompts for credentials and sets the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.Reset()
	fmt.Fprintln(a.out, a.renderer.Success("Logged in as "+u.Email))
	return nil
}

// Logout clears the session pointer and transient state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.lifecycle.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
