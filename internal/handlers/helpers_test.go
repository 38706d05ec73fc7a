package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestOptionalDate(t *testing.T) {
	for _, in := range []*string{nil, strPtr(""), strPtr("   ")} {
		d, err := optionalDate(in)
		require.NoError(t, err)
		assert.Nil(t, d)
	}

	d, err := optionalDate(strPtr("2025-01-31"))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2025-01-31", d.String())

	_, err = optionalDate(strPtr("31/01/2025"))
	assert.Error(t, err)
}
