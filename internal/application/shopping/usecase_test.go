package shopping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/shopping"
)

func TestBuildEntries_FiltraLoComprable(t *testing.T) {
	shortage := 100.0
	availability := []dto.IngredientAvailabilityDTO{
		{Name: "豚肉", Status: dto.AvailabilityAvailable},
		{Name: "牛乳", Status: dto.AvailabilityPartial, Shortage: &shortage, ShortageUnit: "ml"},
		{Name: "人参", Status: dto.AvailabilityMissing},
		{Name: "謎の粉", Status: dto.AvailabilityUnknown, Reason: "unidades no comparables"},
	}

	entries := shopping.BuildEntries(availability)

	// Sólo partial y missing generan línea; available y unknown no.
	require.Len(t, entries, 2)
	assert.Equal(t, "牛乳", entries[0].Name)
	require.NotNil(t, entries[0].Shortage)
	assert.InDelta(t, 100, *entries[0].Shortage, 1e-9)
	assert.Equal(t, "ml", entries[0].ShortageUnit)
	assert.Equal(t, "人参", entries[1].Name)
	assert.Nil(t, entries[1].Shortage)
}

func TestBuildEntries_DespensaCompleta(t *testing.T) {
	entries := shopping.BuildEntries([]dto.IngredientAvailabilityDTO{
		{Name: "豚肉", Status: dto.AvailabilityAvailable},
	})
	assert.Empty(t, entries)
}
