package account

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"atelier/internal/shared/authorization"
	"atelier/internal/shared/utils"
)

// User is a customer or staff account. Customers own quotes and bookings;
// admins run the review queue.
type User struct {
	id           uint
	email        string
	name         string
	passwordHash string
	role         authorization.UserRole
	active       bool
	lastLoginAt  *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active customer account. passwordHash is produced by the
// auth layer; the domain never sees plaintext.
func NewUser(email, name, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	name = utils.NormalizeContactName(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(userID uint, email, name, passwordHash string, role authorization.UserRole, active bool, lastLoginAt *time.Time, version int, createdAt, updatedAt time.Time) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           userID,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		lastLoginAt:  lastLoginAt,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Email() string                 { return u.email }
func (u *User) Name() string                  { return u.name }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() authorization.UserRole  { return u.role }
func (u *User) IsActive() bool                { return u.active }
func (u *User) LastLoginAt() *time.Time       { return u.lastLoginAt }
func (u *User) Version() int                  { return u.version }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }
func (u *User) IsAdmin() bool                 { return u.role.IsAdmin() }

// SetID assigns the persistence identifier exactly once.
func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}

// ChangeRole assigns a new role. Only super admins may call this; the
// enforcement lives in the application layer.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if role != authorization.RoleUser && role != authorization.RoleAdmin && role != authorization.RoleSuperAdmin {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.touch()
	return nil
}

// ChangePasswordHash swaps the stored hash after a password change.
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// RecordLogin notes a successful authentication.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.lastLoginAt = &now
	u.touch()
}

// Deactivate disables the account without deleting its quotes.
func (u *User) Deactivate() {
	u.active = false
	u.touch()
}

// Activate re-enables the account.
func (u *User) Activate() {
	u.active = true
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
	u.version++
}
