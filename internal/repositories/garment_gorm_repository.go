package repositories

import (
	"fmt"

	"wardrobe/internal/models"

	"gorm.io/gorm"
)

// GORMGarmentRepository is a GORM implementation of GarmentRepository backed
// by the local SQLite database.
type GORMGarmentRepository struct {
	db *gorm.DB
}

// NewGORMGarmentRepository creates a new instance of GORMGarmentRepository.
func NewGORMGarmentRepository(db *gorm.DB) *GORMGarmentRepository {
	return &GORMGarmentRepository{
		db: db,
	}
}

// Init creates the garments table if it does not exist. Databases created
// before the quantity column was introduced get it added (default 0) without
// disturbing existing rows; the column's presence is checked explicitly
// rather than by catching a duplicate-column error.
func (r *GORMGarmentRepository) Init() error {
	migrator := r.db.Migrator()
	if !migrator.HasTable(&models.Garment{}) {
		if err := migrator.CreateTable(&models.Garment{}); err != nil {
			return fmt.Errorf("failed to create garments table: %w", err)
		}
		return nil
	}
	if !migrator.HasColumn(&models.Garment{}, "quantity") {
		if err := migrator.AddColumn(&models.Garment{}, "quantity"); err != nil {
			return fmt.Errorf("failed to add quantity column: %w", err)
		}
	}
	return nil
}

// Create inserts a new garment; GORM backfills the assigned ID.
func (r *GORMGarmentRepository) Create(garment *models.Garment) error {
	if err := r.db.Create(garment).Error; err != nil {
		return fmt.Errorf("failed to create garment: %w", err)
	}
	return nil
}

// Update replaces all non-id fields of the row with garment.ID. The column
// list is selected explicitly so zero values (an emptied quantity) are
// written too.
func (r *GORMGarmentRepository) Update(garment *models.Garment) error {
	res := r.db.Model(&models.Garment{}).
		Where("id = ?", garment.ID).
		Select("name", "size", "color", "style", "quantity").
		Updates(garment)
	if res.Error != nil {
		return fmt.Errorf("failed to update garment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM does not surface ErrRecordNotFound for an update that
		// matched nothing, so we check RowsAffected ourselves.
		return fmt.Errorf("garment with ID %d: %w", garment.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the garment with the given id.
func (r *GORMGarmentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Garment{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete garment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("garment with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// Fetch returns garments matching the filter, ordered by id. A nil or empty
// filter returns every garment.
func (r *GORMGarmentRepository) Fetch(filter *Filter) ([]models.Garment, error) {
	query := r.db.Model(&models.Garment{})
	if filter != nil {
		// Exact-name, substring-rest matching policy; see Filter.
		if filter.Name != "" {
			query = query.Where("name = ?", filter.Name)
		}
		if filter.Size != "" {
			query = query.Where("size LIKE ?", "%"+filter.Size+"%")
		}
		if filter.Color != "" {
			query = query.Where("color LIKE ?", "%"+filter.Color+"%")
		}
		if filter.Style != "" {
			query = query.Where("style LIKE ?", "%"+filter.Style+"%")
		}
	}
	var garments []models.Garment
	if err := query.Order("id").Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch garments: %w", err)
	}
	return garments, nil
}
