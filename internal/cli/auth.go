package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskflow/internal/auth"
	"github.com/dmitrijs2005/taskflow/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register prompts for name, email, password and its confirmation, checks
// them against the sign-up form rules and creates the account. It does not
// sign the user in.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := auth.ValidateRegistration(fullName, email, password, confirm); err != nil {
		return err
	}
	printlnFn("Password strength:", auth.PasswordStrength(password))

	res := a.authService.Register(ctx, fullName, email, password)
	if !res.Success {
		return errors.New(res.Message)
	}

	printlnFn("Registered! You can now login.")
	return nil
}

// Login prompts for credentials and signs in. The mode switch is driven by
// the auth subscription set up in NewApp.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := auth.ValidateLogin(email, password); err != nil {
		return err
	}

	res := a.authService.Login(ctx, email, password)
	if !res.Success {
		return errors.New(res.Message)
	}

	if u, ok := a.authService.CurrentUser(ctx); ok && u.FullName != "" {
		printlnFn(fmt.Sprintf("Welcome, %s!", u.FullName))
	} else {
		printlnFn("Welcome!")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if u, ok := a.authService.CurrentUser(ctx); ok {
		printlnFn(fmt.Sprintf("%s <%s>", u.FullName, u.Email))
		return nil
	}
	email, ok := a.authService.CurrentUserEmail(ctx)
	if !ok {
		return common.ErrNoSession
	}
	printlnFn(email)
	return nil
}
