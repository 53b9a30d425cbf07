// Package auth manages local TaskFlow accounts and the current session.
//
// Sessions are a token kept in the local store. Whether someone is signed in
// is derived from that token on every call; nothing is cached in memory.
// Subscribers are told about sign-in and sign-out as they happen.
package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/taskflow/internal/common"
	"github.com/dmitrijs2005/taskflow/internal/cryptox"
	"github.com/dmitrijs2005/taskflow/internal/localstore"
	"github.com/dmitrijs2005/taskflow/internal/logging"
	"github.com/dmitrijs2005/taskflow/internal/models"
	"github.com/dmitrijs2005/taskflow/internal/token"
	"github.com/dmitrijs2005/taskflow/internal/users"
)

// Messages returned in Result.Message.
const (
	MsgRegistrationUnavailable = "Registration is unavailable in this environment."
	MsgEmailTaken              = "Email is already registered. Please use another email."
	MsgLoginUnavailable        = "Login is unavailable in this environment."
	MsgInvalidCredentials      = "Invalid email or password. Please try again."
)

// Result is the outcome of Register and Login. Token is set only by a
// successful Login; Message only on failure.
type Result struct {
	Success bool
	Token   string
	Message string
}

// AuthService defines the account and session operations.
type AuthService interface {
	Register(ctx context.Context, fullName, email string, password []byte) Result
	Login(ctx context.Context, email string, password []byte) Result
	Logout(ctx context.Context)
	CurrentUserEmail(ctx context.Context) (string, bool)
	CurrentUser(ctx context.Context) (models.User, bool)
	IsAuthenticated(ctx context.Context) bool
	// Subscribe registers fn to receive IsAuthenticated after every login
	// and logout. The returned function removes the subscription.
	Subscribe(fn func(authenticated bool)) (unsubscribe func())
}

type authService struct {
	store  localstore.Store
	users  users.Directory
	codec  *token.Codec
	logger logging.Logger

	mu        sync.Mutex
	nextSubID int
	subs      map[int]func(bool)
}

func NewAuthService(store localstore.Store, directory users.Directory, codec *token.Codec, logger logging.Logger) AuthService {
	return &authService{
		store:  store,
		users:  directory,
		codec:  codec,
		logger: logger,
		subs:   make(map[int]func(bool)),
	}
}

// Register creates an account. Passwords are stored as argon2id hashes;
// strength rules are the caller's business.
func (a *authService) Register(ctx context.Context, fullName, email string, password []byte) Result {
	if !a.store.Available() {
		return Result{Message: MsgRegistrationUnavailable}
	}

	normalized := users.NormalizeEmail(email)
	if _, exists := a.users.FindByEmail(ctx, normalized); exists {
		return Result{Message: MsgEmailTaken}
	}

	a.users.Insert(ctx, models.User{
		FullName: trimSpace(fullName),
		Email:    normalized,
		Password: cryptox.HashPassword(password),
	})
	a.logger.Info(ctx, "user registered", "email", normalized)

	return Result{Success: true}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) Result {
	if !a.store.Available() {
		return Result{Message: MsgLoginUnavailable}
	}

	normalized := users.NormalizeEmail(email)

	var (
		matched models.User
		found   bool
	)
	// several legacy records may share an email in different case
	for _, u := range a.users.List(ctx) {
		if users.NormalizeEmail(u.Email) != normalized {
			continue
		}
		if cryptox.VerifyPassword(u.Password, password) {
			matched, found = u, true
			break
		}
	}
	if !found {
		a.logger.Info(ctx, "login rejected", "email", normalized)
		return Result{Message: MsgInvalidCredentials}
	}

	tok := a.codec.Encode(matched.Email, matched.FullName)
	a.store.Write(ctx, common.TokenStorageKey, tok)
	a.logger.Info(ctx, "user logged in", "email", matched.Email)

	a.notify(ctx)
	return Result{Success: true, Token: tok}
}

func (a *authService) Logout(ctx context.Context) {
	a.store.Remove(ctx, common.TokenStorageKey)
	a.notify(ctx)
}

// CurrentUserEmail returns the subject of the stored token. Expiry is not
// checked here; IsAuthenticated does that.
func (a *authService) CurrentUserEmail(ctx context.Context) (string, bool) {
	tok, ok := a.store.Read(ctx, common.TokenStorageKey)
	if !ok {
		return "", false
	}
	claims, ok := token.Decode(tok)
	if !ok {
		return "", false
	}
	return token.Subject(claims)
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, bool) {
	email, ok := a.CurrentUserEmail(ctx)
	if !ok {
		return models.User{}, false
	}
	return a.users.FindByEmail(ctx, email)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	if !a.store.Available() {
		return false
	}
	tok, ok := a.store.Read(ctx, common.TokenStorageKey)
	if !ok || tok == "" {
		return false
	}
	return !a.codec.IsExpired(tok)
}

func (a *authService) Subscribe(fn func(bool)) func() {
	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subs[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

func (a *authService) notify(ctx context.Context) {
	a.mu.Lock()
	fns := make([]func(bool), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	if len(fns) == 0 {
		return
	}
	state := a.IsAuthenticated(ctx)
	for _, fn := range fns {
		fn(state)
	}
}
