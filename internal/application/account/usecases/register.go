package usecases

import (
	"context"
	"fmt"

	"atelier/internal/domain/account"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

// minPasswordLength matches the frontend validation.
const minPasswordLength = 8

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterUseCase struct {
	userRepo account.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo account.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*account.User, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := account.NewUser(cmd.Email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.FindByEmail(ctx, u.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "email", u.Email())
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", u.Email())
	return u, nil
}
