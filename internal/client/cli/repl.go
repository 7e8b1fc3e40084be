package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	status() string
	isLoggedIn() bool
	afterCommand(ctx context.Context)

	Open(ctx context.Context, path string) error
	SignIn(ctx context.Context) error
	Logout(ctx context.Context) error
	SetPage(ctx context.Context, n int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	Dismiss(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: open <path>, signin, exit"
	helpSignedIn  = "Available commands: open <path>, page <n>, next, prev, refresh, search [term], create, edit <id>, delete <id>, dismiss, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The prompt shows the current route. Command errors are not fatal: views
// print what the user needs to see, and the loop goes on. The loop exits on
// EOF, on "exit" / "quit" and once ctx is done.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "console %s> ", a.status())

		line, err := awaitInput(ctx, func() (string, error) { return readLine(reader) })
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpSignedOut)
			}

		case "open":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: open <path>")
				continue
			}
			if err := a.Open(ctx, args[0]); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "signin":
			_ = a.SignIn(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "page":
			n, ok := intArg(w, args, "page <n>")
			if ok {
				_ = a.SetPage(ctx, n)
			}

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "create":
			_ = a.Create(ctx)

		case "edit":
			id, ok := intArg(w, args, "edit <id>")
			if ok {
				_ = a.Edit(ctx, id)
			}

		case "delete":
			id, ok := intArg(w, args, "delete <id>")
			if ok {
				_ = a.Delete(ctx, id)
			}

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if ctx.Err() != nil {
			fmt.Fprintln(w)
			return
		}
		a.afterCommand(ctx)
	}
}

func intArg(w io.Writer, args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage:", usage)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(w, "Usage:", usage)
		return 0, false
	}
	return n, true
}
