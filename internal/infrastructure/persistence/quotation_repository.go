package persistence

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence/models"
)

// quotationNumberAttempts bounds the random number search. With a six
// digit space collisions are rare until the table is very full.
const quotationNumberAttempts = 10

// GormQuotationRepository implements QuotationRepository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

func preloadQuotationItems(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindByID finds a quotation with its items by ID
func (r *GormQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Quotation, error) {
	var model models.QuotationModel
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadQuotationItems).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a quotation by its generated number
func (r *GormQuotationRepository) FindByNumber(ctx context.Context, number string) (*trade.Quotation, error) {
	var model models.QuotationModel
	if err := r.db.WithContext(ctx).
		Preload("Items", preloadQuotationItems).
		Where("quotation_number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all quotations matching the filter
func (r *GormQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Quotation, error) {
	query := r.db.WithContext(ctx).Model(&models.QuotationModel{}).Preload("Items", preloadQuotationItems)
	for key, value := range filter.Filters {
		switch key {
		case "branch_id":
			query = query.Where("branch_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "created_by":
			query = query.Where("created_by = ?", value)
		}
	}
	query = applyFilter(query, filter, map[string]bool{"created_at": true, "quotation_number": true})

	var rows []models.QuotationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	quotations := make([]trade.Quotation, len(rows))
	for i := range rows {
		quotations[i] = *rows[i].ToDomain()
	}
	return quotations, nil
}

// Save persists the quotation header and its full item collection
func (r *GormQuotationRepository) Save(ctx context.Context, quotation *trade.Quotation) error {
	model := models.QuotationModelFromDomain(quotation)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrDuplicateNumber
			}
			return err
		}

		keep := make([]uuid.UUID, len(model.Items))
		for i := range model.Items {
			keep[i] = model.Items[i].ID
		}
		if err := tx.Where("quotation_id = ? AND id NOT IN ?", model.ID, keep).
			Delete(&models.QuotationItemModel{}).Error; err != nil {
			return err
		}

		for i := range model.Items {
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a quotation and its items
func (r *GormQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&models.QuotationItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.QuotationModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// GenerateNumber mints an unused QT-prefixed six digit random number
func (r *GormQuotationRepository) GenerateNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < quotationNumberAttempts; attempt++ {
		number := fmt.Sprintf("QT-%06d", rand.Intn(1000000))
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.QuotationModel{}).
			Where("quotation_number = ?", number).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", shared.NewDomainError("DEPENDENCY_FAILURE", "could not mint an unused quotation number")
}

var _ trade.QuotationRepository = (*GormQuotationRepository)(nil)
