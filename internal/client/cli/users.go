package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Create prompts for a new user and submits it when the form is valid.
func (a *App) Create(ctx context.Context) error {
	if _, ok := a.dashboard(); !ok {
		return errWrongView
	}

	in, err := a.userForm(ctx, models.UserInput{})
	if err != nil {
		return err
	}
	if err := a.validator.Validate(in); err != nil {
		a.printValidation(err)
		return err
	}

	if f := a.users.Create(ctx, in); f != nil {
		return errors.New(f.Message)
	}
	a.println("User created.")
	return nil
}

// Edit prompts for new values of a user on the current page, pre-filled with
// the current ones, and sends only the fields that changed.
func (a *App) Edit(ctx context.Context, id int) error {
	if _, ok := a.dashboard(); !ok {
		return errWrongView
	}

	cur, ok := a.userOnPage(id)
	if !ok {
		return nil
	}

	in, err := a.userForm(ctx, models.UserInput{
		FirstName: cur.FirstName,
		LastName:  cur.LastName,
		Email:     cur.Email,
		Avatar:    cur.Avatar,
	})
	if err != nil {
		return err
	}
	if err := a.validator.Validate(in); err != nil {
		a.printValidation(err)
		return err
	}

	patch := changedFields(cur, in)
	if patch == (models.UserInput{}) {
		a.println("Nothing to update.")
		return nil
	}

	if f := a.users.Update(ctx, id, patch); f != nil {
		return errors.New(f.Message)
	}
	a.println("User updated.")
	return nil
}

// Delete asks for confirmation and removes a user on the current page.
func (a *App) Delete(ctx context.Context, id int) error {
	if _, ok := a.dashboard(); !ok {
		return errWrongView
	}

	u, ok := a.userOnPage(id)
	if !ok {
		return nil
	}
	yes, err := a.confirm(ctx, fmt.Sprintf("Delete %s (%d)?", u.FullName(), u.ID))
	if err != nil || !yes {
		return err
	}

	if f := a.users.Delete(ctx, id); f != nil {
		return errors.New(f.Message)
	}
	a.println("User deleted.")
	return nil
}

func (a *App) userOnPage(id int) (models.User, bool) {
	for _, u := range a.users.State().Users {
		if u.ID == id {
			return u, true
		}
	}
	a.printf("No user with id %d on this page.\n", id)
	return models.User{}, false
}

func (a *App) userForm(ctx context.Context, def models.UserInput) (models.UserInput, error) {
	var (
		in  models.UserInput
		err error
	)
	fields := []struct {
		prompt string
		def    string
		dst    *string
	}{
		{"First name", def.FirstName, &in.FirstName},
		{"Last name", def.LastName, &in.LastName},
		{"Email", def.Email, &in.Email},
		{"Profile image link", def.Avatar, &in.Avatar},
	}
	for _, f := range fields {
		*f.dst, err = awaitInput(ctx, func() (string, error) {
			return getTextWithDefault(a.reader, f.prompt, f.def, a.out)
		})
		if err != nil {
			return models.UserInput{}, err
		}
	}
	return in, nil
}

func changedFields(cur models.User, in models.UserInput) models.UserInput {
	var patch models.UserInput
	if in.FirstName != cur.FirstName {
		patch.FirstName = in.FirstName
	}
	if in.LastName != cur.LastName {
		patch.LastName = in.LastName
	}
	if in.Email != cur.Email {
		patch.Email = in.Email
	}
	if in.Avatar != cur.Avatar {
		patch.Avatar = in.Avatar
	}
	return patch
}
