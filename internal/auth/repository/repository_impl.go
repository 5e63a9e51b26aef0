package repository

import (
	"context"
	"errors"

	"github.com/spiten/spiten/internal/auth/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SuperadminCredential{}).Count(&count).Error
	return count, err
}

func (r *repository) Create(ctx context.Context, cred *domain.SuperadminCredential) error {
	return r.db.WithContext(ctx).Create(cred).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*domain.SuperadminCredential, error) {
	var cred domain.SuperadminCredential
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSuperadminNotFound
		}
		return nil, err
	}
	return &cred, nil
}
