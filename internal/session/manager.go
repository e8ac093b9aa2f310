package session

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/snapbuy-client/internal/domain/customer"
)

// API is the slice of the gateway client the session manager needs.
type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, token string) (*customer.Customer, error)
}

// Session is an authenticated customer session.
type Session struct {
	Token    string
	Customer *customer.Customer
}

// Status returns the account approval status, or the zero status when the
// session or its profile is absent.
func (s *Session) Status() customer.Status {
	if s == nil || s.Customer == nil {
		return ""
	}
	return s.Customer.Status
}

// Manager logs sessions in, persists their tokens, and restores them on
// the next run.
type Manager struct {
	api   API
	store TokenStore
}

func NewManager(api API, store TokenStore) *Manager {
	return &Manager{api: api, store: store}
}

// Login exchanges credentials for a token, persists it, and fetches the
// account profile.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := m.api.Login(ctx, username, password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}
	if err := m.store.Save(token); err != nil {
		return nil, err
	}

	cust, err := m.api.Me(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "fetch profile")
	}
	return &Session{Token: token, Customer: cust}, nil
}

// Restore revalidates a persisted token against the remote. A token the
// remote rejects is cleared so the next run starts logged out.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	token, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSession
	}

	cust, err := m.api.Me(ctx, token)
	if err != nil {
		_ = m.store.Clear()
		return nil, errors.Wrap(err, "validate session")
	}
	return &Session{Token: token, Customer: cust}, nil
}

// Logout forgets the persisted token. The remote keeps no session state
// to invalidate.
func (m *Manager) Logout() error {
	return m.store.Clear()
}
