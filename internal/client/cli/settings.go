package cli

import (
	"context"
	"fmt"
	"strconv"
)

const defaultExportPath = "neuro-vitals-export.json"

// Settings opens the settings screen. Toggles start from their defaults on
// every visit.
func (a *App) Settings(ctx context.Context) error {
	a.toggles = a.settingsService.Open()
	fmt.Fprintln(a.out, a.renderer.Settings(a.settingsService.Sections(a.toggles)))
	return nil
}

// Toggle flips one of the settings-screen switches.
func (a *App) Toggle(_ context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: toggle <notifications|sharing>")
		return nil
	}

	switch args[0] {
	case "notifications":
		a.toggles.Notifications = !a.toggles.Notifications
		fmt.Fprintf(a.out, "Notifications: %s\n", onOff(a.toggles.Notifications))
	case "sharing", "datasharing":
		a.toggles.DataSharing = !a.toggles.DataSharing
		fmt.Fprintf(a.out, "Data sharing: %s\n", onOff(a.toggles.DataSharing))
	default:
		fmt.Fprintln(a.out, "Unknown setting:", args[0])
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// ClearHistory removes all test records and re-opens the settings screen.
func (a *App) ClearHistory(ctx context.Context) error {
	if err := a.settingsService.ClearHistory(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.renderer.Success("History cleared."))
	return a.Settings(ctx)
}

// AddTest records a test result: addtest <kind> <score>.
func (a *App) AddTest(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: addtest <kind> <score>")
		return nil
	}
	score, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("score %q is not a number", args[1])
	}

	rec, err := a.settingsService.RecordTest(ctx, args[0], score)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded %s test %s\n", rec.Kind, a.renderer.Muted(rec.ID))
	return nil
}

// History lists the stored test records.
func (a *App) History(ctx context.Context) error {
	recs, err := a.settingsService.History(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.renderer.History(recs))
	return nil
}

// Export writes the user's data to args[0], or to a default file.
func (a *App) Export(ctx context.Context, args []string) error {
	path := defaultExportPath
	if len(args) > 0 {
		path = args[0]
	}
	if err := a.settingsService.ExportFile(ctx, path); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.renderer.Success("Exported to "+path))
	return nil
}
