package cli

import (
	"context"
	"errors"
	"os"

	"gamelog/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates against the
// backend. On success the session is persisted, opportunistic syncing is
// enabled and the username appears in the prompt.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.userName = username
	a.lifecycle.Enable(ctx)
	printlnFn("Success!")
	return nil
}

// Logout pushes pending local changes with a forced sync pass, then drops the
// session. When the push cannot complete (offline, server down) the logout is
// refused and the session kept, so no local change is ever stranded.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		if errors.Is(err, common.ErrOffline) {
			printlnFn("Cannot log out while offline: unsynced changes would be lost.")
		} else {
			printlnFn("Logout aborted:", err.Error())
		}
		return err
	}

	a.lifecycle.Disable()
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}
