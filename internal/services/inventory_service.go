package services

import (
	"fmt"
	"strings"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// InventoryService handles business logic related to garments: it trims and
// validates field values before they reach the repository.
type InventoryService struct {
	repo     repositories.GarmentRepository
	validate *validator.Validate
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.GarmentRepository) *InventoryService {
	return &InventoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

// Add creates a new garment and returns it with its assigned id. Text fields
// are trimmed of surrounding whitespace; a field that trims to empty or a
// negative quantity yields ErrValidation and nothing is persisted.
func (s *InventoryService) Add(name, size, color, style string, quantity int) (*models.Garment, error) {
	garment := &models.Garment{
		Name:     strings.TrimSpace(name),
		Size:     strings.TrimSpace(size),
		Color:    strings.TrimSpace(color),
		Style:    strings.TrimSpace(style),
		Quantity: quantity,
	}
	if err := s.validate.Struct(garment); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.repo.Create(garment); err != nil {
		return nil, err
	}
	return garment, nil
}

// Update replaces every field of the garment with the given id. The same
// trimming and validation as Add applies; updating a nonexistent id passes
// through repositories.ErrNotFound.
func (s *InventoryService) Update(id uint, name, size, color, style string, quantity int) error {
	garment := &models.Garment{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Size:     strings.TrimSpace(size),
		Color:    strings.TrimSpace(color),
		Style:    strings.TrimSpace(style),
		Quantity: quantity,
	}
	if err := s.validate.Struct(garment); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return s.repo.Update(garment)
}

// Delete removes the garment with the given id.
func (s *InventoryService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// Fetch retrieves garments matching the filter; a nil or empty filter
// retrieves all of them.
func (s *InventoryService) Fetch(filter *repositories.Filter) ([]models.Garment, error) {
	return s.repo.Fetch(filter)
}
