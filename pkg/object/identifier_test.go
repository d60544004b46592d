package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSourceRowID(t *testing.T) {
	tests := []struct {
		name      string
		rowID     string
		table     string
		wantType  string
		wantTable string
	}{
		{name: "with table", rowID: "12349", table: "my_test_table", wantType: "I2", wantTable: "my_test_table"},
		{name: "without table", rowID: "12349", table: "", wantType: "I1"},
		{name: "zero row", rowID: "0", table: "t", wantType: "I2", wantTable: "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := EncodeSourceRowID(tt.rowID, tt.table)
			assert.Equal(t, tt.wantType, id.IdentifierType)
			assert.Equal(t, tt.rowID, id.ArtificialIdentifier)
			assert.Equal(t, tt.wantTable, id.DatabaseTable)
		})
	}
}

func TestNewUniqueStringID(t *testing.T) {
	id := NewUniqueStringID("hotel|warsaw|01")
	assert.Equal(t, "I3", id.IdentifierType)
	assert.Equal(t, "hotel|warsaw|01", id.ConcatenationOfField)
}

func TestStructuredIDWireForm(t *testing.T) {
	sz := EncodeSourceRowID("7", "").sz()
	assert.Equal(t, SZIdentifier{IdentifierType: "I1", ArtificialIdentifier: "7"}, sz)

	sz = NewUniqueStringID("k").sz()
	assert.Equal(t, SZIdentifier{IdentifierType: "I3", ConcatenationOfField: "k"}, sz)
}
