package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskflow/internal/config"
	"github.com/dmitrijs2005/taskflow/internal/logging"
)

// output collects everything printed through printlnFn.
type output struct {
	mu    sync.Mutex
	lines []string
}

func (o *output) println(args ...any) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	s := strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	o.lines = append(o.lines, s)
	return len(s), nil
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	out := &output{}
	orig := printlnFn
	printlnFn = out.println
	t.Cleanup(func() { printlnFn = orig })
	return out
}

// nonInteractive makes GetPassword read from the scripted reader.
func nonInteractive(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func testConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreDriver = driver
	return cfg
}

func newTestApp(t *testing.T, driver string) *App {
	t.Helper()
	app, err := NewApp(context.Background(), testConfig(driver), logging.Discard())
	require.NoError(t, err)
	app.out = io.Discard
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// feed replaces the app's input with the given lines.
func feed(app *App, lines ...string) {
	app.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}
