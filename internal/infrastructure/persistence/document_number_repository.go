package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence/models"
)

// GormDocumentNumberRepository implements DocumentNumberRepository using a
// per-prefix, per-day counter row. Callers must invoke NextNumber inside
// the transaction that inserts the numbered document; rolling that
// transaction back also rolls back the counter increment.
type GormDocumentNumberRepository struct {
	db *gorm.DB
}

// NewGormDocumentNumberRepository creates a new GormDocumentNumberRepository
func NewGormDocumentNumberRepository(db *gorm.DB) *GormDocumentNumberRepository {
	return &GormDocumentNumberRepository{db: db}
}

// NextNumber increments and returns the sequence for the prefix on the
// given day. The sequence restarts at 1 each day per prefix.
func (r *GormDocumentNumberRepository) NextNumber(ctx context.Context, prefix string, day time.Time) (int64, error) {
	dayKey := day.Format("20060102")
	db := r.db.WithContext(ctx)

	result := db.Model(&models.DocumentNumberModel{}).
		Where("prefix = ? AND day = ?", prefix, dayKey).
		UpdateColumn("last_seq", gorm.Expr("last_seq + 1"))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		row := models.DocumentNumberModel{Prefix: prefix, Day: dayKey, LastSeq: 1}
		err := db.Create(&row).Error
		if err == nil {
			return 1, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, err
		}
		// Another transaction created the counter first; increment it.
		result = db.Model(&models.DocumentNumberModel{}).
			Where("prefix = ? AND day = ?", prefix, dayKey).
			UpdateColumn("last_seq", gorm.Expr("last_seq + 1"))
		if result.Error != nil {
			return 0, result.Error
		}
	}

	var row models.DocumentNumberModel
	if err := db.Where("prefix = ? AND day = ?", prefix, dayKey).First(&row).Error; err != nil {
		return 0, err
	}
	return row.LastSeq, nil
}

var _ finance.DocumentNumberRepository = (*GormDocumentNumberRepository)(nil)
