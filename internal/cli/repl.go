package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// commands defines the minimal surface the REPL needs to operate. The real
// App type satisfies it; tests provide a lightweight stub.
type commands interface {
	LoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Unsave(ctx context.Context, args []string) error
	Contact(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Draft(ctx context.Context) error
	Alerts(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to c. Unknown commands are reported back. The loop exits on scanner EOF or
// on "exit"/"quit". Handler errors are rendered, never fatal.
func runREPL(ctx context.Context, c commands, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "rc %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if c.LoggedIn(ctx) {
				fmt.Fprintln(w, "Available commands: list, show <id>, save <id>, unsave <id>, contact <id>, dashboard, draft, alerts [prefs], whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, list, show <id>, exit")
			}
		case "register":
			err = c.Register(ctx)
		case "login":
			err = c.Login(ctx)
		case "logout":
			err = c.Logout(ctx)
		case "whoami":
			err = c.WhoAmI(ctx)
		case "l", "list":
			err = c.List(ctx)
		case "show":
			err = c.Show(ctx, args)
		case "save":
			err = c.Save(ctx, args)
		case "unsave":
			err = c.Unsave(ctx, args)
		case "contact":
			err = c.Contact(ctx, args)
		case "dashboard":
			err = c.Dashboard(ctx)
		case "draft":
			err = c.Draft(ctx)
		case "alerts":
			err = c.Alerts(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
