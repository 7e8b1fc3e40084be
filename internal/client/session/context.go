package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Context answers "is there a session?" for the router and the views, and
// records session changes made by the session store. It is created once per
// console and passed explicitly to whoever needs it.
type Context struct {
	storage *Storage
	logger  logging.Logger
}

func NewContext(storage *Storage, logger logging.Logger) *Context {
	return &Context{storage: storage, logger: logger}
}

// Token returns the persisted token or "" when there is none or it cannot
// be read.
func (c *Context) Token(ctx context.Context) string {
	tok, ok, err := c.storage.Token(ctx)
	if err != nil {
		c.logger.Warn(ctx, "session token unreadable", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return tok
}

// Valid reports whether a non-empty token is stored.
func (c *Context) Valid(ctx context.Context) bool {
	return c.Token(ctx) != ""
}

// Start persists token after a successful sign-in.
func (c *Context) Start(ctx context.Context, token string) error {
	return c.storage.Begin(ctx, token)
}

// End forgets the token and marks the session as logged out.
func (c *Context) End(ctx context.Context) error {
	return c.storage.Logout(ctx)
}

// LoggedOut reports whether the last session ended with an explicit logout.
func (c *Context) LoggedOut(ctx context.Context) bool {
	v, err := c.storage.LogoutConfirm(ctx)
	if err != nil {
		c.logger.Warn(ctx, "logout flag unreadable", "error", err)
		return false
	}
	return v
}

// CloseTimeout bounds the cleanup done by Close.
const CloseTimeout = 5 * time.Second

// Close ends the session scope. Unless persist is set every entry is
// removed, the way a browser drops session storage with its tab. The
// cleanup still runs when ctx is already cancelled, for example after an
// interrupt.
func (c *Context) Close(ctx context.Context, persist bool) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), CloseTimeout)
	defer cancel()

	keys, err := c.storage.Keys(ctx)
	if err != nil {
		c.logger.Warn(ctx, "session entries unreadable", "error", err)
	}
	if persist {
		c.logger.Debug(ctx, "session kept", "keys", keys)
		return nil
	}

	c.logger.Debug(ctx, "session cleared", "keys", keys)
	return c.storage.Reset(ctx)
}
