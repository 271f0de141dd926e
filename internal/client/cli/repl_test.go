package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error  { return f.record("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Account(context.Context) error { return f.record("account", nil) }
func (f *fakeExec) Theme(_ context.Context, args []string) error {
	return f.record("theme", args)
}
func (f *fakeExec) Avatar(_ context.Context, args []string) error {
	return f.record("avatar", args)
}
func (f *fakeExec) Settings(context.Context) error { return f.record("settings", nil) }
func (f *fakeExec) Toggle(_ context.Context, args []string) error {
	return f.record("toggle", args)
}
func (f *fakeExec) ClearHistory(context.Context) error { return f.record("clearhistory", nil) }
func (f *fakeExec) AddTest(_ context.Context, args []string) error {
	return f.record("addtest", args)
}
func (f *fakeExec) History(context.Context) error { return f.record("history", nil) }
func (f *fakeExec) Export(_ context.Context, args []string) error {
	return f.record("export", args)
}
func (f *fakeExec) Delete(context.Context) error { return f.record("delete", nil) }

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"account",
		"theme dark",
		"avatar /tmp/me.png",
		"settings",
		"toggle sharing",
		"addtest reaction 88",
		"history",
		"clearhistory",
		"export out.json",
		"",
		"foobar",
		"delete",
		"logout",
		"exit",
		"account",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"login", "account", "theme", "avatar", "settings", "toggle", "addtest",
		"history", "clearhistory", "export", "delete", "logout",
	}, exec.calls, "nothing runs after exit")
	assert.Equal(t, []string{"dark"}, exec.args[2])
	assert.Equal(t, []string{"reaction", "88"}, exec.args[6])

	assert.Contains(t, *out, helpLoggedOut)
	assert.Contains(t, *out, helpLoggedIn)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{err: common.ErrUnauthenticated}
	input := strings.NewReader("account\nhistory")
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	assert.Equal(t, []string{"account", "history"}, exec.calls, "last line without newline still runs")
	assert.Contains(t, *out, "Error: please log in first")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "invalid email or password", userMessage(fmt.Errorf("x: %w", common.ErrInvalidCredentials)))
	assert.Equal(t, "boom", userMessage(errors.New("boom")))
}
