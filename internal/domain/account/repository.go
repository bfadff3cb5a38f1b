package account

import "context"

// Repository persists user accounts. Find methods return (nil, nil) when no
// record matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]*User, int64, error)
}

// AuditRepository persists the append-only admin audit trail.
type AuditRepository interface {
	Create(ctx context.Context, e *AuditEntry) error
	ListByActor(ctx context.Context, actorID uint, offset, limit int) ([]*AuditEntry, int64, error)
	ListByTarget(ctx context.Context, targetType string, targetID uint) ([]*AuditEntry, error)
}
