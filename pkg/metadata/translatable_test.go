package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTranslatable_ByType(t *testing.T) {
	idx, err := NewIndex(&Catalog{
		Attributes: []Attribute{
			{Code: "S", TypeValidator: ShortText},
			{Code: "L", TypeValidator: LongText},
			{Code: "M", TypeValidator: MultiSelectList},
			{Code: "O", TypeValidator: SingleSelectList},
			{Code: "N", TypeValidator: Number},
			{Code: "B", TypeValidator: Boolean},
			{Code: "D", TypeValidator: Date},
			{Code: "C", TypeValidator: Complex},
		},
	})
	assert.NoError(t, err)

	for _, code := range []string{"S", "L", "M", "O"} {
		assert.True(t, idx.IsTranslatable(code), code)
	}
	for _, code := range []string{"N", "B", "D", "C", "unknown"} {
		assert.False(t, idx.IsTranslatable(code), code)
	}
}

func TestIsTranslatable_GeographyAlwaysFalse(t *testing.T) {
	var attrs []Attribute
	for _, code := range []string{"A009", "A010", "A011", "A012"} {
		attrs = append(attrs, Attribute{Code: code, TypeValidator: ShortText})
	}
	idx, err := NewIndex(&Catalog{Attributes: attrs})
	assert.NoError(t, err)

	for _, a := range attrs {
		assert.True(t, IsGeography(a.Code))
		assert.False(t, idx.IsTranslatable(a.Code), a.Code)
	}

	empty, err := NewIndex(&Catalog{})
	assert.NoError(t, err)
	assert.False(t, empty.IsTranslatable("A009"))
	assert.False(t, IsGeography("A001"))
}
