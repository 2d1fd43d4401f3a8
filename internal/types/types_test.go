package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTypeBuiltins(t *testing.T) {
	tests := []struct {
		name string
		want DataType
	}{
		{"Int32", Int32},
		{"Float32", Float32},
		{"String", String},
		{"Boolean", Boolean},
		{"Void", Void},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseType(tt.name))
	}
}

func TestParseTypeCustom(t *testing.T) {
	dt := ParseType("Widget")
	name, ok := dt.IsCustom()
	assert.True(t, ok)
	assert.Equal(t, "Widget", name)
	assert.Equal(t, "Widget", dt.String())
}

func TestDataTypeStructuralEquality(t *testing.T) {
	assert.Equal(t, Int32, ParseType("Int32"))
	assert.Equal(t, Custom("Foo"), Custom("Foo"))
	assert.NotEqual(t, Custom("Foo"), Custom("Bar"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, Int32.IsNumeric())
	assert.True(t, Float32.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.False(t, Boolean.IsNumeric())
	assert.False(t, Void.IsNumeric())
}
