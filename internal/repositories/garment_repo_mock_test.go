package repositories_test

import (
	"testing"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRepositoryAssignsSequentialIDs(t *testing.T) {
	repo := repositories.NewMockGarmentRepository()

	first := &models.Garment{Name: "Shirt", Size: "M", Color: "Red", Style: "Casual", Quantity: 5}
	second := &models.Garment{Name: "Jeans", Size: "32", Color: "Blue", Style: "Denim", Quantity: 3}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestMockRepositoryMatchesFilterPolicy(t *testing.T) {
	repo := repositories.NewMockGarmentRepository()
	require.NoError(t, repo.Create(&models.Garment{Name: "Shirt", Size: "M", Color: "Red", Style: "Casual", Quantity: 5}))
	require.NoError(t, repo.Create(&models.Garment{Name: "Shirt", Size: "L", Color: "Blue", Style: "Formal", Quantity: 2}))

	both, err := repo.Fetch(&repositories.Filter{Name: "Shirt"})
	require.NoError(t, err)
	assert.Len(t, both, 2)

	one, err := repo.Fetch(&repositories.Filter{Color: "Re"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Red", one[0].Color)

	none, err := repo.Fetch(&repositories.Filter{Name: "Sh"})
	require.NoError(t, err)
	assert.Empty(t, none, "name filtering is exact, not substring")
}

func TestMockRepositoryNotFound(t *testing.T) {
	repo := repositories.NewMockGarmentRepository()

	assert.ErrorIs(t, repo.Update(&models.Garment{ID: 7, Name: "X", Size: "S", Color: "Red", Style: "Plain", Quantity: 1}), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(7), repositories.ErrNotFound)
}
