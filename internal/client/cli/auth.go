package cli

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/router"
	"github.com/dmitrijs2005/userconsole/internal/client/store"
	"github.com/dmitrijs2005/userconsole/internal/common"
)

// getSimpleText, getTextWithDefault, getPassword and confirm are
// indirections used to facilitate testing.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
	confirm            = Confirm
)

var errWrongView = errors.New("command not available here")

// signInView is the public start page.
type signInView struct {
	app   *App
	unsub func()
}

func newSignInView(a *App) *signInView {
	return &signInView{app: a}
}

func (v *signInView) Enter(ctx context.Context) error {
	if v.app.sessions.LoggedOut(ctx) {
		v.app.println("You have been logged out.")
	}
	v.app.println("Sign in to continue (type 'signin').")
	v.unsub = v.app.auth.Subscribe(v.onState)
	return nil
}

func (v *signInView) Leave(ctx context.Context) {
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
}

// onState shows progress and leaves for the dashboard once signed in.
func (v *signInView) onState(st store.SessionState) {
	switch {
	case st.IsLoading:
		v.app.println("Signing in...")
	case st.IsLoggedIn:
		v.app.println("Signed in.")
		v.app.requestRedirect(router.PathDashboard)
	}
}

// SignIn prompts for credentials, checks them locally and submits them.
// Field errors block the submission and are printed one per line.
func (a *App) SignIn(ctx context.Context) error {
	if _, ok := a.currentView().(*signInView); !ok {
		a.println("Open /signin to sign in.")
		return errWrongView
	}

	email, err := awaitInput(ctx, func() (string, error) {
		return getSimpleText(a.reader, "Enter email", a.out)
	})
	if err != nil {
		return err
	}
	password, err := awaitInput(ctx, func() ([]byte, error) {
		return getPassword(a.reader, a.out)
	})
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Email: email, Password: string(password)}
	if err := a.validator.Validate(creds); err != nil {
		a.printValidation(err)
		return err
	}

	if f := a.auth.SignIn(ctx, creds); f != nil {
		a.println("!", f.Message)
		return errors.New(f.Message)
	}
	return nil
}

// Logout asks for confirmation, forgets the session and returns to the
// sign-in page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not signed in.")
		return nil
	}

	ok, err := a.confirm(ctx, "Are you sure you want to logout?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	logoutErr := a.auth.Logout(ctx)
	if err := a.Open(ctx, router.PathSignIn); err != nil {
		return errors.Join(logoutErr, err)
	}
	a.users.Reset()
	return logoutErr
}

func (a *App) confirm(ctx context.Context, question string) (bool, error) {
	return awaitInput(ctx, func() (bool, error) {
		return confirm(a.reader, question, a.out)
	})
}

func (a *App) currentView() router.View {
	_, v := a.router.Current()
	return v
}

func (a *App) printValidation(err error) {
	var ve *forms.ValidationError
	if !errors.As(err, &ve) {
		a.println("error:", err)
		return
	}
	printFieldErrors(a.out, ve)
}

func printFieldErrors(w io.Writer, ve *forms.ValidationError) {
	keys := make([]string, 0, len(ve.Fields))
	for k := range ve.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = io.WriteString(w, "  - "+ve.Fields[k]+"\n")
	}
}
