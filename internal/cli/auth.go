package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rentalconnect/internal/common"
	"github.com/dmitrijs2005/rentalconnect/internal/models"
	"github.com/dmitrijs2005/rentalconnect/internal/users"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	red, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", red.FirstName)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}
	userType, err := GetSimpleText(a.reader, "Account type (renter/owner)", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	_, label := users.PasswordStrength(password)
	fmt.Fprintln(a.out, label)

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Fprintln(a.out, "Passwords do not match")
		return nil
	}

	u, err := a.users.Create(ctx, users.Draft{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Password:  password,
		UserType:  models.UserType(userType),
	})
	if err != nil {
		if common.IsValidation(err) {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
		return err
	}

	if _, err := a.sessions.AutoLogin(ctx, u); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created successfully! Welcome, %s!\n", u.FirstName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "You have been logged out successfully")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	red, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if red == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s %s <%s>: %s, joined %s\n",
		red.FirstName, red.LastName, red.Email, red.UserType, red.Joined)
	return nil
}
