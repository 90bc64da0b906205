// Package testutil provides in-memory stores for tests that do not need PostgreSQL.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"photo-backend/internal/models"
)

// Users is an in-memory UserStore that enforces unique usernames and emails.
type Users struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.User

	// Err, when set, is returned by every method.
	Err error
}

func NewUsers() *Users {
	return &Users{nextID: 1, rows: map[uint]models.User{}}
}

func (s *Users) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	for _, u := range s.rows {
		if u.Username == user.Username {
			return &models.DuplicateError{Field: "Username"}
		}
		if u.Email == user.Email {
			return &models.DuplicateError{Field: "Email"}
		}
	}

	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	s.nextID++
	s.rows[user.ID] = *user
	return nil
}

// Delete removes a user without touching photos that reference it.
func (s *Users) Delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
}

func (s *Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	u, ok := s.rows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (s *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, u := range s.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

// Photos is an in-memory PhotoStore. Owners are resolved through the Users store.
type Photos struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Photo
	users  *Users

	Err error
}

func NewPhotos(users *Users) *Photos {
	return &Photos{nextID: 1, rows: map[uint]models.Photo{}, users: users}
}

func (s *Photos) List(_ context.Context) ([]models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]models.Photo, 0, len(s.rows))
	for _, p := range s.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Photos) Create(ctx context.Context, photo *models.Photo) error {
	if _, err := s.users.FindByID(ctx, photo.UserID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	now := time.Now()
	photo.ID = s.nextID
	photo.CreatedAt, photo.UpdatedAt = now, now
	s.nextID++
	stored := *photo
	stored.User = nil
	s.rows[photo.ID] = stored
	return nil
}

func (s *Photos) FindByIDWithUser(ctx context.Context, id uint) (*models.Photo, error) {
	s.mu.Lock()
	if s.Err != nil {
		s.mu.Unlock()
		return nil, s.Err
	}
	p, ok := s.rows[id]
	s.mu.Unlock()
	if !ok {
		return nil, models.ErrNotFound
	}

	owner, err := s.users.FindByID(ctx, p.UserID)
	if err == nil {
		p.User = owner
	}
	return &p, nil
}
