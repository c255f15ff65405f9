package service

import (
	"context"
	"strings"

	apperrors "github.com/pasko-evg/superlists/internal/errors"
	"github.com/pasko-evg/superlists/internal/model"
	"github.com/pasko-evg/superlists/internal/repository"
)

// ListSummary pairs an owned list with its display name for the my-lists
// page. The name is resolved from the first item explicitly rather than
// lazily through the relation.
type ListSummary struct {
	List model.List
	Name string
}

// ListService exposes list and item operations.
type ListService interface {
	CreateList(ctx context.Context, text string, ownerEmail *string) (*model.List, error)
	AddItem(ctx context.Context, listID uint, text string) (*model.Item, error)
	GetList(ctx context.Context, id uint) (*model.List, []model.Item, error)
	ListsForUser(ctx context.Context, email string) (*model.User, []ListSummary, error)
}

type listService struct {
	listRepo repository.ListRepository
	userRepo repository.UserRepository
}

// NewListService builds a ListService.
func NewListService(listRepo repository.ListRepository, userRepo repository.UserRepository) ListService {
	return &listService{listRepo: listRepo, userRepo: userRepo}
}

// CreateList creates a list together with its first item. The owner, when
// present, must be the email of an authenticated user; anonymous lists pass
// a nil owner.
func (s *listService) CreateList(ctx context.Context, text string, ownerEmail *string) (*model.List, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyItem
	}
	return s.listRepo.CreateWithFirstItem(ctx, text, ownerEmail)
}

// AddItem appends an item to an existing list. Duplicates within the list
// are rejected; the same text in another list is unaffected.
func (s *listService) AddItem(ctx context.Context, listID uint, text string) (*model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyItem
	}
	if _, err := s.listRepo.FindByID(ctx, listID); err != nil {
		return nil, err
	}

	existing, err := s.listRepo.Items(ctx, listID)
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		if item.Text == text {
			return nil, apperrors.ErrDuplicateItem
		}
	}

	// The unique (list_id, text) index catches the race where two
	// requests pass the pre-check with the same text; the repository
	// reports that as ErrDuplicateItem too.
	return s.listRepo.AddItem(ctx, listID, text)
}

func (s *listService) GetList(ctx context.Context, id uint) (*model.List, []model.Item, error) {
	list, err := s.listRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.listRepo.Items(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return list, items, nil
}

// ListsForUser returns the user's owned lists with display names. An
// unknown email is an error; a known user with no lists is not.
func (s *listService) ListsForUser(ctx context.Context, email string) (*model.User, []ListSummary, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	lists, err := s.listRepo.ForOwner(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]ListSummary, 0, len(lists))
	for _, list := range lists {
		items, err := s.listRepo.Items(ctx, list.ID)
		if err != nil {
			return nil, nil, err
		}
		summaries = append(summaries, ListSummary{List: list, Name: model.ListName(items)})
	}
	return user, summaries, nil
}
