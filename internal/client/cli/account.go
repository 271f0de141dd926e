package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
)

// Account shows the profile of the logged-in user.
func (a *App) Account(ctx context.Context) error {
	view, err := a.profileService.Load(ctx)
	if err != nil {
		return err
	}
	if view == nil {
		fmt.Fprintln(a.out, a.renderer.Muted("No profile found. Register or log in again."))
		return nil
	}
	fmt.Fprintln(a.out, a.renderer.Profile(view))
	return nil
}

// Theme prints the stored mode, or sets a new one.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		mode, err := a.themeService.Current(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Theme: %s\n", mode)
		return nil
	}

	mode, err := models.ParseThemeMode(args[0])
	if err != nil {
		return err
	}
	dark, err := a.themeService.SetMode(ctx, mode)
	if err != nil {
		return err
	}

	appearance := "light"
	if dark {
		appearance = "dark"
	}
	fmt.Fprintln(a.out, a.renderer.Success(fmt.Sprintf("Theme set to %s (%s appearance)", mode, appearance)))
	return nil
}

// Avatar uploads the image at args[0] as the profile picture.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: avatar <path>")
		return nil
	}

	url, err := a.avatarService.UploadFile(ctx, args[0])
	if err != nil {
		if errors.Is(err, common.ErrAvatarDecode) {
			fmt.Fprintln(a.out, a.renderer.Danger("That file could not be read as an image."))
		}
		return err
	}
	fmt.Fprintln(a.out, a.renderer.Success(fmt.Sprintf("Avatar updated (%s).", mimeOf(url))))
	return nil
}

const deleteWarning = "Are you sure? This action cannot be undone. All your data including test history, " +
	"biometric profiles, and account information will be permanently deleted."

// Delete walks through the confirmation step and deletes the account on
// "yes".
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrUnauthenticated
	}

	a.deleteFlow.Request()
	fmt.Fprintln(a.out, a.renderer.Danger(deleteWarning))

	ok, err := getConfirmation(a.reader, "Delete forever?", a.out)
	if err != nil || !ok {
		a.deleteFlow.Cancel()
		if err == nil {
			fmt.Fprintln(a.out, "Cancelled.")
		}
		return err
	}

	if err := a.deleteFlow.Confirm(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Your account has been deleted.")
	return nil
}
