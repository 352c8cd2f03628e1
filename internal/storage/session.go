package storage

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// Session persists values inside a gorilla session, one Storage per
// request/response pair. Each tab carries its own cookie copy, so concurrent
// tabs are last-write-wins on the shared key; that limitation is accepted,
// not reconciled here.
type Session struct {
	store sessions.Store
	name  string
	w     http.ResponseWriter
	r     *http.Request
}

// NewSession creates a session-backed storage bound to the given request
func NewSession(store sessions.Store, name string, w http.ResponseWriter, r *http.Request) *Session {
	return &Session{
		store: store,
		name:  name,
		w:     w,
		r:     r,
	}
}

func (s *Session) Get(key string) (string, bool, error) {
	session, err := s.store.Get(s.r, s.name)
	if err != nil {
		return "", false, fmt.Errorf("get session: %w", err)
	}

	raw, ok := session.Values[key]
	if !ok {
		return "", false, nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", false, nil
	}

	return value, true, nil
}

func (s *Session) Set(key, value string) error {
	session, err := s.store.Get(s.r, s.name)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	session.Values[key] = value

	if err := session.Save(s.r, s.w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}
