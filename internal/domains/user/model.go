package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of permission levels. Gates compare enum values,
// never raw strings from the wire.
type Role string

const (
	RoleReader Role = "reader"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a wire string onto the enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleReader, RoleAuthor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// User is both the stored account record and, minus the password hash, the
// per-request identity attached by the auth middleware.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password_hash"` // Never expose in JSON
	Role         Role      `json:"role" db:"role"`
	ProfileImage string    `json:"profileImage" db:"profile_image"`
	Bio          string    `json:"bio" db:"bio"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Summary is the reference expansion embedded in post responses.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage"`
	Bio          string    `json:"bio,omitempty"`
}

func (u *User) Summary() Summary {
	return Summary{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}
