package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ultrakill-save-editor/pkg/nrbf"
)

func TestReadField(t *testing.T) {
	fields := nrbf.NewFieldMap()
	fields.Set("money", nrbf.Int32(7))
	fields.Set("flags", nrbf.BooleanArray{true, false})
	c := asClass("C", fields)

	v, err := readField[nrbf.Int32](c, "money")
	require.NoError(t, err)
	assert.Equal(t, nrbf.Int32(7), v)

	_, err = readField[nrbf.Int32](c, "absent")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = readField[nrbf.Boolean](c, "money")
	assert.ErrorIs(t, err, ErrFieldType)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "money", fe.Field)
	assert.Contains(t, err.Error(), "have Int32, want Boolean")

	_, err = readField[nrbf.Int32Array](c, "flags")
	assert.ErrorIs(t, err, ErrFieldType)
}

func TestReadArray_Length(t *testing.T) {
	fields := nrbf.NewFieldMap()
	fields.Set("ranks", nrbf.Int32Array{1, 2, 3})
	c := asClass("C", fields)

	v, err := readArray[nrbf.Int32Array](c, "ranks", 3)
	require.NoError(t, err)
	assert.Equal(t, nrbf.Int32Array{1, 2, 3}, v)

	_, err = readArray[nrbf.Int32Array](c, "ranks", 6)
	assert.ErrorIs(t, err, ErrFieldLength)
}
