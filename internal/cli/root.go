package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if email, ok := a.authService.CurrentUserEmail(context.Background()); ok && a.Mode() == ModeSignedIn {
		s = email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, starts the session watcher and runs the REPL until
// the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to TaskFlow CLI (type 'help' for commands)")
	if a.Mode() == ModeUnavailable {
		printlnFn("Storage is unavailable: nothing you enter will be saved.")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartSessionWatcher(watchCtx, a.config.SessionCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
