package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"controlastock_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence operations this feature needs on
// top of the shared user table. Following Go convention: interfaces are
// defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by ID, ErrUserNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by email, ErrUserNotFound when missing.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll lists every user, ordered by ID.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Save writes back every column of an existing user.
	Save(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. Items and tokens referencing the user are
	// removed by the database cascade.
	Delete(ctx context.Context, id uint) error
}

// ProfilePatch is a partial profile update. A nil field means "leave
// unchanged", which is distinct from an empty string: binding rejects blank
// values, so a field is either absent or valid.
type ProfilePatch struct {
	Nome  *string
	Cnpj  *string
	Cep   *string
	Email *string
	Senha *string
}

// UpdateInput is a full overwrite of a user record; only the password is
// optional.
type UpdateInput struct {
	Nome  string
	Cnpj  string
	Cep   string
	Email string
	Senha *string
}

// userUsecase implements profile and user-administration rules.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// GetByID returns the user with the given ID.
func (u *userUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// GetByEmail returns the user with the given email.
func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.users.FindByEmail(ctx, email)
}

// List returns all users. Authorization (admin only) is enforced at the HTTP
// surface.
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// emailAvailable checks that no *other* user holds the given email.
func (u *userUsecase) emailAvailable(ctx context.Context, email string, selfID uint) error {
	other, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil
		}
		return err
	}
	if other.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

func hashSenha(senha string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// UpdateProfile applies the non-nil fields of the patch to the user's own
// record. An email change re-checks uniqueness against all other users; a new
// password is re-hashed.
func (u *userUsecase) UpdateProfile(ctx context.Context, id uint, patch ProfilePatch) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if err := u.emailAvailable(ctx, *patch.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Nome != nil {
		user.Nome = *patch.Nome
	}
	if patch.Cnpj != nil {
		user.Cnpj = *patch.Cnpj
	}
	if patch.Cep != nil {
		user.Cep = *patch.Cep
	}
	if patch.Senha != nil {
		hashed, err := hashSenha(*patch.Senha)
		if err != nil {
			return nil, err
		}
		user.Senha = hashed
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateByID overwrites nome, cnpj, cep and email of the target user; the
// password is only re-hashed when present.
func (u *userUsecase) UpdateByID(ctx context.Context, id uint, in UpdateInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != user.Email {
		if err := u.emailAvailable(ctx, in.Email, user.ID); err != nil {
			return nil, err
		}
	}

	user.Nome = in.Nome
	user.Cnpj = in.Cnpj
	user.Cep = in.Cep
	user.Email = in.Email
	if in.Senha != nil {
		hashed, err := hashSenha(*in.Senha)
		if err != nil {
			return nil, err
		}
		user.Senha = hashed
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteByID removes the user. Items and issued tokens go with it via the
// database cascade.
func (u *userUsecase) DeleteByID(ctx context.Context, id uint) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}
