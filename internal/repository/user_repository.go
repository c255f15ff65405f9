package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/pasko-evg/superlists/internal/errors"
	"github.com/pasko-evg/superlists/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindOrCreate returns the user with the given email, creating it
	// first if it does not exist.
	FindOrCreate(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindOrCreate(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{Email: email}
	if err := r.db.WithContext(ctx).FirstOrCreate(user, model.User{Email: email}).Error; err != nil {
		return nil, err
	}
	return user, nil
}
