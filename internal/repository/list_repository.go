package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/pasko-evg/superlists/internal/errors"
	"github.com/pasko-evg/superlists/internal/model"
)

// ListRepository defines list and item persistence operations.
type ListRepository interface {
	// CreateWithFirstItem creates a list and its first item in one
	// transaction; a failure partway leaves no orphan list behind.
	CreateWithFirstItem(ctx context.Context, text string, ownerEmail *string) (*model.List, error)
	AddItem(ctx context.Context, listID uint, text string) (*model.Item, error)
	FindByID(ctx context.Context, id uint) (*model.List, error)
	Items(ctx context.Context, listID uint) ([]model.Item, error)
	ForOwner(ctx context.Context, email string) ([]model.List, error)
}

type listRepository struct {
	db *gorm.DB
}

// NewListRepository builds a GORM-backed repository.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) CreateWithFirstItem(ctx context.Context, text string, ownerEmail *string) (*model.List, error) {
	list := &model.List{OwnerEmail: ownerEmail}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		item := &model.Item{ListID: list.ID, Text: text}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *listRepository) AddItem(ctx context.Context, listID uint, text string) (*model.Item, error) {
	item := &model.Item{ListID: listID, Text: text}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		// Unique index on (list_id, text): concurrent duplicate inserts
		// land here rather than in the service-level pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateItem
		}
		return nil, err
	}
	return item, nil
}

func (r *listRepository) FindByID(ctx context.Context, id uint) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) Items(ctx context.Context, listID uint) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *listRepository) ForOwner(ctx context.Context, email string) ([]model.List, error) {
	var lists []model.List
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("id ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}
