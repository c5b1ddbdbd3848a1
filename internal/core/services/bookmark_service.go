package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
	"github.com/haunan-see/bookmarks-api/internal/core/ports"
)

// bookmarkService enforces ownership with an explicit fetch-then-check so a
// foreign record is reported differently on reads (not found) and writes
// (forbidden).
type bookmarkService struct {
	repo ports.BookmarkRepository
}

func NewBookmarkService(repo ports.BookmarkRepository) ports.BookmarkService {
	return &bookmarkService{
		repo: repo,
	}
}

func (s *bookmarkService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	bookmarks, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []*domain.Bookmark{}
	}
	return bookmarks, nil
}

// Get hides foreign bookmarks behind ErrBookmarkNotFound so their existence
// never leaks to other users.
func (s *bookmarkService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Bookmark, error) {
	bookmark, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, domain.ErrBookmarkNotFound
	}
	return bookmark, nil
}

func (s *bookmarkService) Create(ctx context.Context, userID uuid.UUID, input ports.CreateBookmarkInput) (*domain.Bookmark, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Link == "" {
		return nil, fmt.Errorf("%w: link is required", domain.ErrValidation)
	}

	bookmark := &domain.Bookmark{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}
	if err := s.repo.Save(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) Edit(ctx context.Context, userID, id uuid.UUID, input ports.EditBookmarkInput) (*domain.Bookmark, error) {
	bookmark, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
		}
		bookmark.Title = *input.Title
	}
	if input.Description != nil {
		bookmark.Description = *input.Description
	}
	if input.Link != nil {
		if *input.Link == "" {
			return nil, fmt.Errorf("%w: link must not be empty", domain.ErrValidation)
		}
		bookmark.Link = *input.Link
	}

	if err := s.repo.Update(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.fetchOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// fetchOwned is the write-path ownership check: an absent record stays a
// not-found, an existing record owned by someone else becomes forbidden.
func (s *bookmarkService) fetchOwned(ctx context.Context, userID, id uuid.UUID) (*domain.Bookmark, error) {
	bookmark, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	if bookmark.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return bookmark, nil
}
