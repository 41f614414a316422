package cli

import (
	"context"
	"fmt"

	"qrstudio/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// account. Registration never logs the user in; on success the user is told
// to run 'login'.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, models.RegisterRequest{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
	})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. Use 'login' to sign in.\n", user.Email)
	return nil
}

// Login prompts for credentials and runs the two-step login. The session is
// only persisted once both the token and the profile have been obtained.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.userEmail = sess.User.Email
	fmt.Fprintf(a.out, "Logged in as %s\n", sess.User.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the cached profile of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := a.auth.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return err
	}
	fmt.Fprintf(a.out, "%s %s <%s>\n", sess.User.FirstName, sess.User.LastName, sess.User.Email)
	return nil
}

// ForgotPassword asks the backend to send a reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "If the address exists, a reset email is on its way.")
	return nil
}

// ResetPassword redeems a reset token for a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, token, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Password updated. Use 'login' to sign in.")
	return nil
}
