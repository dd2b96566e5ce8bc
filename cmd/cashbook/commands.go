package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/moneytrackultra/go-cashbook/internal/client"
	"github.com/moneytrackultra/go-cashbook/internal/service"
	"github.com/moneytrackultra/go-cashbook/models"
)

const usage = `Commands:
  register         create an account (-email, -password, -name)
  login            authenticate online (-email, -password)
  offline-login    authenticate against the cached credential (-email, -password)
  resume           resume a soft-logged-out social session
  soft-logout      suspend the session, keep the cached account
  logout           sign out and wipe the cached account
  profile          edit the profile (-name, -email, -password for reauth)
  change-password  rotate the account password (-current, -new)
  reset            request a password reset mail (-email)
  status           print the current session state
  sync             push a pending profile edit now`

func run(ctx context.Context, app *client.App, args []string) error {
	if len(args) == 0 {
		fmt.Println(usage)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return cmdRegister(ctx, app, rest)
	case "login":
		return cmdLogin(ctx, app, rest)
	case "offline-login":
		return cmdOfflineLogin(ctx, app, rest)
	case "resume":
		return cmdResume(ctx, app)
	case "soft-logout":
		return app.Services.Session.SoftLogout(ctx)
	case "logout":
		return app.Services.Session.HardLogout(ctx)
	case "profile":
		return cmdProfile(ctx, app, rest)
	case "change-password":
		return cmdChangePassword(ctx, app, rest)
	case "reset":
		return cmdReset(ctx, app, rest)
	case "status":
		return cmdStatus(ctx, app)
	case "sync":
		app.Services.ProfileSync.DrainIfPending(ctx, app.Connectivity.IsOnline(ctx))
		return nil
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdRegister(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("register: -email and -password are required")
	}

	identity, err := app.Services.Session.Register(ctx, *email, *password, *name)
	if err != nil {
		return err
	}
	fmt.Printf("registered as %s (%s)\n", identity.Email, identity.ID)
	return nil
}

func cmdLogin(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("login: -email and -password are required")
	}

	identity, err := app.Services.Session.LoginOnline(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", identity.Email)
	return nil
}

func cmdOfflineLogin(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("offline-login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("offline-login: -email and -password are required")
	}

	identity, err := app.Services.Session.LoginOffline(ctx, *email, *password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCachedUser):
			return errors.New("no cached account on this device, log in online first")
		case errors.Is(err, service.ErrNoOfflineCredential):
			return errors.New("no offline credential on this device, log in online first")
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrEmailMismatch):
			return errors.New("invalid email/password")
		default:
			return err
		}
	}
	fmt.Printf("logged in offline as %s\n", identity.Email)
	return nil
}

func cmdResume(ctx context.Context, app *client.App) error {
	identity, err := app.Services.Session.ResumeSocialSession(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("resumed session for %s\n", identity.Email)
	return nil
}

func cmdProfile(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	password := fs.String("password", "", "current password, required for an email change")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" && *email == "" {
		return errors.New("profile: nothing to change, pass -name and/or -email")
	}

	edit := models.ProfileEdit{NewName: *name, NewEmail: *email, CurrentSecret: *password}
	result, err := app.Services.ProfileSync.ApplyEdit(ctx, edit, app.Connectivity.IsOnline(ctx))
	if err != nil {
		return fmt.Errorf("profile edit (%s): %w", result, err)
	}
	fmt.Printf("profile edit: %s\n", result)
	return nil
}

func cmdChangePassword(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("change-password", flag.ExitOnError)
	current := fs.String("current", "", "current password")
	next := fs.String("new", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *current == "" || *next == "" {
		return errors.New("change-password: -current and -new are required")
	}

	if err := app.Services.Session.ChangePassword(ctx, *current, *next); err != nil {
		return err
	}
	fmt.Println("password changed")
	return nil
}

func cmdReset(ctx context.Context, app *client.App, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("reset: -email is required")
	}

	if err := app.Services.Session.RequestPasswordReset(ctx, *email); err != nil {
		return err
	}
	fmt.Println("password reset requested, check your mail")
	return nil
}

func cmdStatus(ctx context.Context, app *client.App) error {
	phase, err := app.Services.Session.CurrentPhase(ctx)
	if err != nil {
		return err
	}

	identity, err := app.LocalState.GetIdentity(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("session: %s\n", phase)
	if identity != nil {
		fmt.Printf("account: %s (%s)\n", identity.Email, identity.DisplayName)
	}

	pending, err := app.LocalState.GetPendingSync(ctx)
	if err != nil {
		return err
	}
	if pending {
		fmt.Println("profile: edits waiting to sync")
	}
	return nil
}
