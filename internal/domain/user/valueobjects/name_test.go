package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	name, err := NewName("  Alice Smith  ")

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", name.String())
}

func TestNewName_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "single char", value: "A"},
		{name: "too long", value: strings.Repeat("x", 51)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestName_Equals(t *testing.T) {
	a, _ := NewName("Alice")
	b, _ := NewName("alice")
	c, _ := NewName("Carol")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestName_TitleCased(t *testing.T) {
	name, err := NewName("alice VAN der berg")

	require.NoError(t, err)
	assert.Equal(t, "Alice Van Der Berg", name.TitleCased())
}
