package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, status string) error
	Search(ctx context.Context, term string) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Stats(ctx context.Context) error
	Export(ctx context.Context, path string) error
	Import(ctx context.Context, path string) error
}

const (
	helpSignedOut = "Available commands: register, login, exit"
	helpSignedIn  = "Available commands: (l)ist [all|todo|in_progress|done], search <term>, show, add, edit, delete, stats, whoami, logout, export <file>, import <file>, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Signed out:
//
//	help, register, login, exit | quit
//
// Signed in:
//
//	help, list [status], search <term>, show, add, edit, delete, stats,
//	whoami, logout, export <file>, import <file>, exit | quit
//
// Errors returned by handlers are printed and the loop goes on. It ends on
// end of input or exit/quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("taskflow %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		loggedIn := a.isLoggedIn(ctx)
		if err := dispatch(ctx, a, loggedIn, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, loggedIn bool, cmd string, args []string) error {
	if !loggedIn {
		switch cmd {
		case "help":
			printlnFn(helpSignedOut)
		case "register":
			return a.Register(ctx)
		case "login":
			return a.Login(ctx)
		case "l", "list", "search", "show", "add", "edit", "delete", "stats", "whoami", "logout", "export", "import":
			printlnFn("Please login first.")
		default:
			printlnFn("Unknown command:", cmd)
		}
		return nil
	}

	switch cmd {
	case "help":
		printlnFn(helpSignedIn)
	case "register", "login":
		printlnFn("Already logged in. Use 'logout' first.")
	case "l", "list":
		return a.List(ctx, strings.Join(args, " "))
	case "search":
		return a.Search(ctx, strings.Join(args, " "))
	case "show":
		return a.Show(ctx)
	case "add":
		return a.Add(ctx)
	case "edit":
		return a.Edit(ctx)
	case "delete":
		return a.Delete(ctx)
	case "stats":
		return a.Stats(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "logout":
		return a.Logout(ctx)
	case "export", "import":
		if len(args) != 1 {
			printlnFn(fmt.Sprintf("Usage: %s <file>", cmd))
			return nil
		}
		if cmd == "export" {
			return a.Export(ctx, args[0])
		}
		return a.Import(ctx, args[0])
	default:
		printlnFn("Unknown command:", cmd)
	}
	return nil
}
