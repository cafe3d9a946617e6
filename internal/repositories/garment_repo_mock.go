package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"wardrobe/internal/models"
)

// MockGarmentRepository is an in-memory implementation of GarmentRepository.
type MockGarmentRepository struct {
	garments map[uint]models.Garment
	nextID   uint
	mu       sync.RWMutex
}

// NewMockGarmentRepository creates a new instance of MockGarmentRepository.
func NewMockGarmentRepository() *MockGarmentRepository {
	return &MockGarmentRepository{
		garments: make(map[uint]models.Garment),
		nextID:   1,
	}
}

// Init is a no-op for the in-memory store.
func (r *MockGarmentRepository) Init() error {
	return nil
}

// Create adds a new garment, assigning the next free id.
func (r *MockGarmentRepository) Create(garment *models.Garment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if garment.ID == 0 {
		garment.ID = r.nextID
		r.nextID++
	} else if garment.ID >= r.nextID {
		r.nextID = garment.ID + 1
	}
	r.garments[garment.ID] = *garment
	return nil
}

// Update modifies an existing garment.
func (r *MockGarmentRepository) Update(garment *models.Garment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.garments[garment.ID]; !ok {
		return fmt.Errorf("garment with ID %d: %w", garment.ID, ErrNotFound)
	}
	r.garments[garment.ID] = *garment
	return nil
}

// Delete removes a garment by its id.
func (r *MockGarmentRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.garments[id]; !ok {
		return fmt.Errorf("garment with ID %d: %w", id, ErrNotFound)
	}
	delete(r.garments, id)
	return nil
}

// Fetch returns garments matching the filter in id order, applying the same
// exact-name, substring-rest policy as the SQLite implementation.
func (r *MockGarmentRepository) Fetch(filter *Filter) ([]models.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	garmentList := make([]models.Garment, 0, len(r.garments))
	for _, g := range r.garments {
		if filter.Empty() || matches(g, filter) {
			garmentList = append(garmentList, g)
		}
	}
	sort.Slice(garmentList, func(i, j int) bool { return garmentList[i].ID < garmentList[j].ID })
	return garmentList, nil
}

func matches(g models.Garment, f *Filter) bool {
	if f.Name != "" && g.Name != f.Name {
		return false
	}
	if f.Size != "" && !strings.Contains(g.Size, f.Size) {
		return false
	}
	if f.Color != "" && !strings.Contains(g.Color, f.Color) {
		return false
	}
	if f.Style != "" && !strings.Contains(g.Style, f.Style) {
		return false
	}
	return true
}
