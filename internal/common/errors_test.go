package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageError_WrapsAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("upsert", cause)
	require.Error(t, err)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "upsert", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upsert")
}

func TestNewStorageError_NilCause(t *testing.T) {
	assert.NoError(t, NewStorageError("getall", nil))
}
