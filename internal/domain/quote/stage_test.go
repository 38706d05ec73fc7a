package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestCreateStage(t *testing.T) {
	assert.Equal(t, DefaultStage, CreateStage(nil))
	assert.Equal(t, DefaultStage, CreateStage(ptr("")))
	assert.Equal(t, "Negociacao", CreateStage(ptr("Negociação")))
}

func TestUpdateStage(t *testing.T) {
	assert.Nil(t, UpdateStage(nil))
	assert.Nil(t, UpdateStage(ptr("")))

	got := UpdateStage(ptr("Aprovação"))
	require.NotNil(t, got)
	assert.Equal(t, "Aprovacao", *got)
}
