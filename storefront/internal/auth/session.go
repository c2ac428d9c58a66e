package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

type storedToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session keeps the owner's access token, user id and username in a slot.
// Expiry is checked before every use, not only when the server answers 401.
type Session struct {
	slot storage.Slot
	now  func() time.Time
}

func NewSession(slot storage.Slot) *Session {
	return &Session{slot: slot, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

func (s *Session) Save(ctx context.Context, jwtDTO domain.JwtDTO) error {
	if jwtDTO.AccessToken == "" {
		return errors.New("login response carried no access token")
	}

	expiresAt, err := s.expiry(jwtDTO)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(storedToken{Value: jwtDTO.AccessToken, ExpiresAt: expiresAt})
	if err != nil {
		return err
	}
	if err := s.slot.Set(ctx, storage.KeyAccessToken, raw); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.slot.Set(ctx, storage.KeyUserID, []byte(jwtDTO.UserID)); err != nil {
		return fmt.Errorf("store user id: %w", err)
	}
	if err := s.slot.Set(ctx, storage.KeyUsername, []byte(jwtDTO.Username)); err != nil {
		return fmt.Errorf("store username: %w", err)
	}
	return nil
}

// expiry uses expiresIn (seconds) when present, otherwise the token's own exp claim.
func (s *Session) expiry(jwtDTO domain.JwtDTO) (time.Time, error) {
	if jwtDTO.ExpiresIn > 0 {
		return s.now().Add(time.Duration(jwtDTO.ExpiresIn) * time.Second), nil
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(jwtDTO.AccessToken, &claims); err != nil {
		return time.Time{}, fmt.Errorf("read token expiry: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token carries no expiry")
	}
	return claims.ExpiresAt.Time, nil
}

// Token returns the stored access token. A missing or expired token clears
// the session and yields ErrUnauthorized.
func (s *Session) Token(ctx context.Context) (string, error) {
	raw, err := s.slot.Get(ctx, storage.KeyAccessToken)
	if errors.Is(err, storage.ErrSlotEmpty) {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	var tok storedToken
	if err := json.Unmarshal(raw, &tok); err != nil || tok.Value == "" {
		_ = s.Clear(ctx)
		return "", domain.ErrUnauthorized
	}
	if !s.now().Before(tok.ExpiresAt) {
		if err := s.Clear(ctx); err != nil {
			return "", err
		}
		return "", domain.ErrUnauthorized
	}
	return tok.Value, nil
}

func (s *Session) LoggedIn(ctx context.Context) bool {
	_, err := s.Token(ctx)
	return err == nil
}

func (s *Session) UserID(ctx context.Context) (string, error) {
	return s.read(ctx, storage.KeyUserID)
}

func (s *Session) Username(ctx context.Context) (string, error) {
	return s.read(ctx, storage.KeyUsername)
}

func (s *Session) read(ctx context.Context, key string) (string, error) {
	raw, err := s.slot.Get(ctx, key)
	if errors.Is(err, storage.ErrSlotEmpty) {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Clear removes every piece of token state.
func (s *Session) Clear(ctx context.Context) error {
	for _, key := range []string{storage.KeyAccessToken, storage.KeyUserID, storage.KeyUsername} {
		if err := s.slot.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}
