package service

import (
	"context"
	"fmt"
	"log"

	"overcooked-client/storefront/internal/domain"
)

type AuthService struct {
	backend  AuthBackend
	session  SessionStore
	validate *Validator
}

func NewAuthService(backend AuthBackend, session SessionStore, validate *Validator) *AuthService {
	return &AuthService{backend: backend, session: session, validate: validate}
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterOwnerRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	jwtDTO, err := s.backend.Register(ctx, req)
	if err != nil {
		return err
	}
	if err := s.session.Save(ctx, jwtDTO); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	log.Printf("[storefront] registered owner %s", jwtDTO.Username)
	return nil
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	jwtDTO, err := s.backend.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := s.session.Save(ctx, jwtDTO); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *AuthService) LoggedIn(ctx context.Context) bool {
	return s.session.LoggedIn(ctx)
}
