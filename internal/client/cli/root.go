package cli

import (
	"context"
	"fmt"
)

// status is the prompt decoration: the logged-in email, if any.
func (a *App) status() string {
	ctx := context.Background()
	id, err := a.repos.Session.Current(ctx)
	if err != nil || id == "" {
		return ""
	}
	u, err := a.repos.Users.Get(ctx, id)
	if err != nil || u == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

// Root applies the stored theme and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	if _, err := a.themeService.Apply(ctx); err != nil {
		a.log.Warn(ctx, "could not apply theme", "error", err)
	}

	fmt.Fprintln(a.out, a.renderer.Title("Welcome to Neuro-Vitals (type 'help' for commands)"))
	runREPL(ctx, a, a.status, a.reader)
}
