package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCategories_DropsDuplicates(t *testing.T) {
	set := NewCategories(CategoryAgeBenefited, CategoryBackstagePass, CategoryAgeBenefited)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(CategoryAgeBenefited))
	assert.True(t, set.Has(CategoryBackstagePass))
	assert.False(t, set.Has(CategoryLegendary))
}

func TestCategories_WithDoesNotMutateReceiver(t *testing.T) {
	base := NewCategories(CategoryConjured)
	grown := base.With(CategoryLegendary)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())
}

func TestCategories_Label(t *testing.T) {
	tests := []struct {
		name     string
		set      Categories
		expected string
	}{
		{"empty set is normal", nil, CategoryLabelNormal},
		{"single", NewCategories(CategoryLegendary), "LEGENDARY"},
		{"pair keeps order", NewCategories(CategoryAgeBenefited, CategoryBackstagePass), "AGE_BENEFITED+BACKSTAGE_PASS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.Label())
		})
	}
}

func TestItem_Clone(t *testing.T) {
	orig := NewItem(NameAgedBrie, 2, 0)
	clone := orig.Clone()
	clone.Quality = 10

	assert.Equal(t, 0, orig.Quality)
	assert.Nil(t, (*Item)(nil).Clone())
}
