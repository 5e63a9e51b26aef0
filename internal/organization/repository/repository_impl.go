package repository

import (
	"context"
	"errors"

	"github.com/spiten/spiten/internal/organization/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) domain.Repository {
	return &repository{db: tx}
}

func (r *repository) CreateOrganization(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) FindOrganizationByName(ctx context.Context, name string) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *repository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization
	if err := r.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *repository) UpdateOrganization(ctx context.Context, name string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Organization{}).
		Where("name = ?", name).
		Updates(fields).Error
}

func (r *repository) DeleteOrganization(ctx context.Context, name string) (int64, error) {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&domain.Organization{})
	return res.RowsAffected, res.Error
}

func (r *repository) CreateAdmin(ctx context.Context, admin *domain.AdminCredential) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) FindAdminByEmail(ctx context.Context, email string) (*domain.AdminCredential, error) {
	var admin domain.AdminCredential
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) UpdateAdminsByOrganization(ctx context.Context, name string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.AdminCredential{}).
		Where("organization_name = ?", name).
		Updates(fields).Error
}

func (r *repository) DeleteAdminsByOrganization(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Where("organization_name = ?", name).
		Delete(&domain.AdminCredential{}).Error
}

func (r *repository) CountOrganizations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Organization{}).Count(&count).Error
	return count, err
}

func (r *repository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.AdminCredential{}).Count(&count).Error
	return count, err
}
