package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/taskflow/internal/auth"
	"github.com/dmitrijs2005/taskflow/internal/config"
	"github.com/dmitrijs2005/taskflow/internal/database"
	"github.com/dmitrijs2005/taskflow/internal/filex"
	"github.com/dmitrijs2005/taskflow/internal/localstore"
	"github.com/dmitrijs2005/taskflow/internal/logging"
	"github.com/dmitrijs2005/taskflow/internal/repositories/kv"
	"github.com/dmitrijs2005/taskflow/internal/tasks"
	"github.com/dmitrijs2005/taskflow/internal/token"
	"github.com/dmitrijs2005/taskflow/internal/users"
)

type Mode string

const (
	ModeSignedIn    Mode = "signed-in"
	ModeSignedOut   Mode = "signed-out"
	ModeUnavailable Mode = "unavailable"
)

var ErrUnknownDriver = errors.New("unknown store driver")

const redisDialTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	repo        kv.Repository
	store       localstore.Store
	authService auth.AuthService
	taskRepo    tasks.Repository
	reader      *bufio.Reader
	out         io.Writer

	closeBackend func() error
	unsubscribe  func()

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the configured backend and builds the services on top of it.
// A backend that cannot be opened is logged and replaced by the null store,
// so the CLI still starts in unavailable mode. Only an unknown driver name
// is an error.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repo, closeFn, err := openBackend(ctx, c)
	if errors.Is(err, ErrUnknownDriver) {
		return nil, err
	}
	if err != nil {
		logger.Warn(ctx, "storage unavailable, continuing without persistence", "driver", c.StoreDriver, "error", err)
		repo, closeFn = nil, nil
	}

	store := localstore.New(repo, logger)
	as := auth.NewAuthService(store, users.NewDirectory(store, logger), token.NewCodec(c.TokenTTL), logger)

	a := &App{
		config:       c,
		logger:       logger,
		repo:         repo,
		store:        store,
		authService:  as,
		taskRepo:     tasks.NewRepository(store, as, logger),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		closeBackend: closeFn,
	}

	a.unsubscribe = as.Subscribe(func(authenticated bool) {
		a.setMode(context.Background(), a.modeFor(authenticated))
	})
	a.refreshMode(ctx)

	return a, nil
}

// openBackend returns the kv.Repository for c.StoreDriver and a function
// releasing it. The "none" driver yields a nil repository.
func openBackend(ctx context.Context, c *config.Config) (kv.Repository, func() error, error) {
	switch c.StoreDriver {
	case config.DriverSQLite:
		if err := filex.EnsureParentDir(c.StoreDSN); err != nil {
			return nil, nil, err
		}
		db, err := database.Open(ctx, database.DriverSQLite, c.StoreDSN)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewSQLiteRepository(db), db.Close, nil

	case config.DriverPostgres:
		db, err := database.Open(ctx, database.DriverPostgres, c.StoreDSN)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewPostgresRepository(db), db.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", c.RedisAddr, err)
		}
		return kv.NewRedisRepository(client, c.RedisPrefix), client.Close, nil

	case config.DriverMemory:
		return kv.NewMemoryRepository(), nil, nil

	case config.DriverNone:
		return nil, nil, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, c.StoreDriver)
}

func (a *App) modeFor(authenticated bool) Mode {
	switch {
	case !a.store.Available():
		return ModeUnavailable
	case authenticated:
		return ModeSignedIn
	default:
		return ModeSignedOut
	}
}

// setMode records mode and returns the previous one. Changes are logged once.
func (a *App) setMode(ctx context.Context, mode Mode) Mode {
	a.mu.Lock()
	prev := a.mode
	a.mode = mode
	a.mu.Unlock()

	if prev != mode {
		a.logger.Info(ctx, "mode changed", "mode", mode)
	}
	return prev
}

// refreshMode re-derives the mode from storage and returns the previous one.
func (a *App) refreshMode(ctx context.Context) Mode {
	return a.setMode(ctx, a.modeFor(a.authService.IsAuthenticated(ctx)))
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close drops the auth subscription and releases the backend.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.closeBackend != nil {
		return a.closeBackend()
	}
	return nil
}

// StartSessionWatcher re-derives the session state every interval until ctx
// is done, and tells the user when a session has expired on its own.
func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if prev := a.refreshMode(ctx); prev == ModeSignedIn && a.Mode() == ModeSignedOut {
				printlnFn("Your session has expired. Please login again.")
			}
		case <-ctx.Done():
			return
		}
	}
}
