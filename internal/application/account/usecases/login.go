package usecases

import (
	"context"
	"fmt"
	"strings"

	"atelier/internal/domain/account"
	"atelier/internal/shared/errors"
	"atelier/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *account.User
	Token string
}

type LoginUseCase struct {
	userRepo account.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo account.Repository, hasher PasswordHasher, issuer TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, issuer: issuer, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	// Same error for unknown email and wrong password.
	if u == nil || !uc.hasher.Verify(u.PasswordHash(), cmd.Password) {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		return nil, errors.NewForbiddenError("account is disabled")
	}

	token, err := uc.issuer.Issue(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		// Login still succeeds; the timestamp is best effort.
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &LoginResult{User: u, Token: token}, nil
}
