package services

import (
	"context"

	"shopapi/internal/domain"
	"shopapi/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Users repos.Repository[domain.User, int64]
}

func NewUserService(users repos.Repository[domain.User, int64]) *UserService {
	return &UserService{Users: users}
}

// UserPatch holds the mutable user fields; nil fields are left unchanged.
type UserPatch struct {
	Name  *string
	Email *string
	Phone *string
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.Users.FindAll(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("user", id, err)
	}
	return u, nil
}

// Insert stores a new user with a bcrypt hash of password. u.ID must be unset.
func (s *UserService) Insert(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if u.ID != 0 {
		return nil, domain.Invalid("id is assigned by the store")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Invalid("%v", err)
	}
	u.PasswordHash = string(h)
	if err := s.Users.Save(ctx, &u); err != nil {
		return nil, writeErr("user", err)
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error) {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if err := s.Users.Save(ctx, u); err != nil {
		return nil, writeErr("user", err)
	}
	return u, nil
}

// Delete removes the user. A user that still has orders is refused with a
// DatabaseError; the orders are left untouched.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	ok, err := s.Users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "user", ID: id}
	}
	return deleteErr("user", id, s.Users.DeleteByID(ctx, id))
}
