package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atelier/internal/domain/account"
	"atelier/internal/infrastructure/persistence/models"
	"atelier/internal/shared/authorization"
	"atelier/internal/shared/db"
	"atelier/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(database *gorm.DB, logger logger.Interface) account.Repository {
	return &UserRepositoryImpl{db: database, logger: logger}
}

func (r *UserRepositoryImpl) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *account.User) error {
	model := r.toModel(u)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "error", err, "email", u.Email())
		return fmt.Errorf("failed to create user: %w", err)
	}
	if err := u.SetID(model.ID); err != nil {
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *account.User) error {
	model := r.toModel(u)
	model.ID = u.ID()
	if err := r.conn(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*account.User, error) {
	var model models.UserModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.toEntity(&model)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*account.User, error) {
	var model models.UserModel
	if err := r.conn(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.toEntity(&model)
}

func (r *UserRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*account.User, int64, error) {
	query := r.conn(ctx).Model(&models.UserModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*account.User, 0, len(userModels))
	for _, m := range userModels {
		u, err := r.toEntity(m)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) toModel(u *account.User) *models.UserModel {
	return &models.UserModel{
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Active:       u.IsActive(),
		LastLoginAt:  u.LastLoginAt(),
		Version:      u.Version(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (r *UserRepositoryImpl) toEntity(model *models.UserModel) (*account.User, error) {
	return account.ReconstructUser(
		model.ID, model.Email, model.Name, model.PasswordHash,
		authorization.UserRole(model.Role), model.Active,
		model.LastLoginAt, model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}
