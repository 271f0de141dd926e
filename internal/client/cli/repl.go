package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/nvxprofile/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Account(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Settings(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	ClearHistory(ctx context.Context) error
	AddTest(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Delete(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, theme <light|dark|system>, exit"
	helpLoggedIn  = "Available commands: account, theme <light|dark|system>, avatar <path>, settings, " +
		"toggle <notifications|sharing>, addtest <kind> <score>, history, clearhistory, export [path], " +
		"logout, delete, exit"
)

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. The loop exits on EOF or when the user types
// "exit" or "quit". Errors returned by handlers are printed and the loop
// carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nvx %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "account", "profile":
			cmdErr = a.Account(ctx)
		case "theme":
			cmdErr = a.Theme(ctx, args)
		case "avatar":
			cmdErr = a.Avatar(ctx, args)
		case "settings":
			cmdErr = a.Settings(ctx)
		case "toggle":
			cmdErr = a.Toggle(ctx, args)
		case "clearhistory":
			cmdErr = a.ClearHistory(ctx)
		case "addtest":
			cmdErr = a.AddTest(ctx, args)
		case "history":
			cmdErr = a.History(ctx)
		case "export":
			cmdErr = a.Export(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", userMessage(cmdErr))
		}
	}
}

// userMessage turns well-known errors into short hints.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return "please log in first"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, common.ErrUploadSuperseded):
		return "a newer avatar upload replaced this one"
	case errors.Is(err, common.ErrSessionChanged):
		return "you logged out before the avatar finished, it was not saved"
	}
	return err.Error()
}
