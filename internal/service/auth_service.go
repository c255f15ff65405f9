package service

import (
	"context"
	"fmt"

	"github.com/pasko-evg/superlists/internal/mail"
	"github.com/pasko-evg/superlists/internal/model"
	"github.com/pasko-evg/superlists/internal/repository"
)

const loginEmailSubject = "Your login link for Superlists"

// AuthService handles passwordless authentication: issuing login links by
// mail and exchanging a token uid for a user identity.
type AuthService interface {
	// SendLoginEmail creates a fresh token for the email and mails the
	// login link. A new token is issued on every call.
	SendLoginEmail(ctx context.Context, email string) error
	// Authenticate exchanges a token uid for a user, creating the user
	// on first redemption. An unknown uid yields ErrTokenNotFound and
	// the caller stays anonymous.
	Authenticate(ctx context.Context, uid string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

type authService struct {
	tokenRepo repository.TokenRepository
	userRepo  repository.UserRepository
	mailer    mail.Mailer
	siteURL   string
	mailFrom  string
}

// NewAuthService creates a new authentication service. siteURL is the
// absolute base used to build login links.
func NewAuthService(tokenRepo repository.TokenRepository, userRepo repository.UserRepository, mailer mail.Mailer, siteURL, mailFrom string) AuthService {
	return &authService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		siteURL:   siteURL,
		mailFrom:  mailFrom,
	}
}

func (s *authService) SendLoginEmail(ctx context.Context, email string) error {
	token, err := s.tokenRepo.Create(ctx, email)
	if err != nil {
		return fmt.Errorf("create login token: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/login?token=%s", s.siteURL, token.UID)
	msg := mail.Message{
		From:    s.mailFrom,
		To:      email,
		Subject: loginEmailSubject,
		Body:    fmt.Sprintf("Use this link to log in:\n\n%s", url),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send login email: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, uid string) (*model.User, error) {
	token, err := s.tokenRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	// First redemption registers the user; later redemptions of any
	// token for the same email resolve to the same row.
	return s.userRepo.FindOrCreate(ctx, token.Email)
}

func (s *authService) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}
