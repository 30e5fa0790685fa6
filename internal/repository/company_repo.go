package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/models"
)

// CompanyFilter narrows company listings.
type CompanyFilter struct {
	PartnershipStatus string
	Sector            string
	Region            string
}

// CompanyRepository provides access to partner company profiles.
type CompanyRepository interface {
	List(ctx context.Context, filter CompanyFilter) ([]models.Company, error)
	GetByID(ctx context.Context, id uint) (models.Company, error)
	GetByUserID(ctx context.Context, userID uint) (models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	WithTx(tx *gorm.DB) CompanyRepository
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository constructs a company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) WithTx(tx *gorm.DB) CompanyRepository {
	return &companyRepository{db: tx}
}

func (r *companyRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Company{}).
		Joins("JOIN users ON users.id = companies.user_id").
		Where("users.is_active = ?", true).
		Preload("User")
}

func (r *companyRepository) List(ctx context.Context, filter CompanyFilter) ([]models.Company, error) {
	query := r.baseQuery(ctx)

	if filter.PartnershipStatus != "" {
		query = query.Where("companies.partnership_status = ?", filter.PartnershipStatus)
	}

	if filter.Sector != "" {
		query = query.Where("companies.sector = ?", filter.Sector)
	}

	if filter.Region != "" {
		query = query.Where("companies.region = ?", filter.Region)
	}

	var companies []models.Company
	if err := query.Order("companies.created_at DESC").Find(&companies).Error; err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) GetByID(ctx context.Context, id uint) (models.Company, error) {
	var company models.Company
	if err := r.baseQuery(ctx).Where("companies.id = ?", id).First(&company).Error; err != nil {
		return models.Company{}, err
	}

	return company, nil
}

func (r *companyRepository) GetByUserID(ctx context.Context, userID uint) (models.Company, error) {
	var company models.Company
	if err := r.baseQuery(ctx).Where("companies.user_id = ?", userID).First(&company).Error; err != nil {
		return models.Company{}, err
	}

	return company, nil
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}
