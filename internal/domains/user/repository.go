package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user store collaborator. GetByID backs the credential
// verifier and must never load the password hash; GetByEmail exists for
// login and is the only read that returns it.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
