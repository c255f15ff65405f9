package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/pasko-evg/superlists/internal/errors"
	"github.com/pasko-evg/superlists/internal/model"
)

// TokenRepository defines login-token persistence operations.
type TokenRepository interface {
	// Create stores a fresh token for the email; the opaque uid is
	// assigned on insert. A new token is created on every call even if
	// one already exists for the email.
	Create(ctx context.Context, email string) (*model.Token, error)
	FindByUID(ctx context.Context, uid string) (*model.Token, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, email string) (*model.Token, error) {
	token := &model.Token{Email: email}
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

func (r *tokenRepository) FindByUID(ctx context.Context, uid string) (*model.Token, error) {
	var token model.Token
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}
