package out

import (
	"context"
	"encoding/json"
	"fmt"

	"skillbridge/internal/modules/auth/domain"
	authout "skillbridge/internal/modules/auth/port/out"
	apperrors "skillbridge/internal/platform/errors"
	"skillbridge/internal/platform/kv"
)

const (
	tokenKey = "session.token"
	userKey  = "session.user"
)

// KVSessionStore serializes the session pair into the durable store.
// The token is stored as-is; the user record goes in as embedded JSON.
type KVSessionStore struct {
	store kv.Store
}

func NewKVSessionStore(store kv.Store) authout.SessionStore {
	return &KVSessionStore{store: store}
}

func (s *KVSessionStore) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	if err := s.store.Set(ctx, tokenKey, session.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.store.Set(ctx, userKey, string(payload)); err != nil {
		return fmt.Errorf("persist user record: %w", err)
	}
	return nil
}

func (s *KVSessionStore) Load(ctx context.Context) (domain.Session, error) {
	token, hasToken, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load token: %w", err)
	}
	raw, hasUser, err := s.store.Get(ctx, userKey)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load user record: %w", err)
	}
	if !hasToken || !hasUser || token == "" {
		return domain.Session{}, apperrors.ErrNoSession
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.Session{}, apperrors.ErrNoSession
	}
	session := domain.Session{Token: token, User: user}
	if !session.Valid() {
		return domain.Session{}, apperrors.ErrNoSession
	}
	return session, nil
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := s.store.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("clear user record: %w", err)
	}
	return nil
}
