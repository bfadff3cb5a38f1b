package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/account"
	"atelier/internal/shared/authorization"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type ChangeRoleCommand struct {
	ActorID  uint
	TargetID uint
	Role     string
}

// ChangeRoleUseCase promotes or demotes an account. Route-level enforcement
// restricts it to super admins; the self-demotion guard lives here.
type ChangeRoleUseCase struct {
	userRepo  account.Repository
	auditRepo account.AuditRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewChangeRoleUseCase(
	userRepo account.Repository,
	auditRepo account.AuditRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*account.User, error) {
	if cmd.ActorID == cmd.TargetID {
		return nil, errors.NewForbiddenError("cannot change your own role")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.TargetID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown role: %q", cmd.Role))
	}
	if err := u.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		entry := account.NewAuditEntry(cmd.ActorID, account.AuditRoleChanged, "user", u.ID(), string(role))
		return uc.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to change role", "error", err, "user_id", cmd.TargetID)
		return nil, err
	}

	uc.logger.Infow("user role changed", "user_id", u.ID(), "role", role, "actor_id", cmd.ActorID)
	return u, nil
}
