package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "store", PkgAlias("legacy-bridge/store"))
	assert.Equal(t, "time", PkgAlias("time"))
	assert.Empty(t, PkgAlias(""))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{" a , b ,, c ", []string{"a", "b", "c"}},
		{",", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitList(tt.in), tt.in)
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Name", UpperFirst("name"))
	assert.Equal(t, "Éclair", UpperFirst("éclair"))
	assert.Equal(t, "X", UpperFirst("X"))
	assert.Empty(t, UpperFirst(""))
}

func TestCut(t *testing.T) {
	before, after, found := Cut(" serialize.using = Money ", "=")
	assert.Equal(t, "serialize.using", before)
	assert.Equal(t, "Money", after)
	assert.True(t, found)

	before, after, found = Cut(" ignore ", "=")
	assert.Equal(t, "ignore", before)
	assert.Empty(t, after)
	assert.False(t, found)
}
