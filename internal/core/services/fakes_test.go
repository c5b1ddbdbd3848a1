package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haunan-see/bookmarks-api/internal/core/domain"
)

// In-memory port implementations used by the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, u := range f.users {
		if u.ID != user.ID && u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

type fakeBookmarkRepo struct {
	bookmarks map[uuid.UUID]*domain.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: map[uuid.UUID]*domain.Bookmark{}}
}

func (f *fakeBookmarkRepo) Save(_ context.Context, bookmark *domain.Bookmark) error {
	bookmark.CreatedAt = time.Now()
	bookmark.UpdatedAt = bookmark.CreatedAt
	f.bookmarks[bookmark.ID] = bookmark
	return nil
}

func (f *fakeBookmarkRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	b, ok := f.bookmarks[id]
	if !ok {
		return nil, domain.ErrBookmarkNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookmarkRepo) GetAllByUser(_ context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	var out []*domain.Bookmark
	for _, b := range f.bookmarks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookmarkRepo) Update(_ context.Context, bookmark *domain.Bookmark) error {
	if _, ok := f.bookmarks[bookmark.ID]; !ok {
		return domain.ErrBookmarkNotFound
	}
	bookmark.UpdatedAt = time.Now()
	f.bookmarks[bookmark.ID] = bookmark
	return nil
}

func (f *fakeBookmarkRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.bookmarks[id]; !ok {
		return domain.ErrBookmarkNotFound
	}
	delete(f.bookmarks, id)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(hash, plaintext string) bool {
	return hash == "hashed:"+plaintext
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID uuid.UUID, _ string) (string, error) {
	return "token-for-" + userID.String(), nil
}

func (fakeIssuer) Verify(token string) (uuid.UUID, error) {
	return uuid.Nil, domain.ErrInvalidToken
}
