package repository

import (
	"testing"

	apperrors "copro-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilder_Build(t *testing.T) {
	b := NewUpdateBuilder("ownerships", OwnershipUpdatableColumns)
	require.NoError(t, b.Set("ownership_percentage", 40.0))
	require.NoError(t, b.Set("notary_reference", "NOT-2024-001"))

	query, args, err := b.Build(7)
	require.NoError(t, err)
	assert.Equal(t,
		`UPDATE "ownerships" SET "ownership_percentage" = $1, "notary_reference" = $2, "updated_at" = NOW() WHERE "id" = $3 RETURNING *`,
		query)
	assert.Equal(t, []interface{}{40.0, "NOT-2024-001", int64(7)}, args)
}

func TestUpdateBuilder_OrderIsInsertionOrder(t *testing.T) {
	b := NewUpdateBuilder("units", UnitUpdatableColumns)
	require.NoError(t, b.Set("millieme", 120))
	require.NoError(t, b.Set("description", "corner flat"))
	require.NoError(t, b.Set("floor", 3))
	require.NoError(t, b.Set("millieme", 150))

	assert.Equal(t, []string{"millieme", "description", "floor"}, b.Columns())
	assert.Equal(t, 3, b.Len())

	query, args, err := b.Build(1)
	require.NoError(t, err)
	assert.Equal(t,
		`UPDATE "units" SET "millieme" = $1, "description" = $2, "floor" = $3, "updated_at" = NOW() WHERE "id" = $4 RETURNING *`,
		query)
	assert.Equal(t, []interface{}{150, "corner flat", 3, int64(1)}, args)
}

func TestUpdateBuilder_RejectsUnknownColumn(t *testing.T) {
	b := NewUpdateBuilder("ownerships", OwnershipUpdatableColumns)

	err := b.Set("active", false)
	assert.True(t, apperrors.IsValidation(err))

	err = b.Set(`id" = 1; --`, 1)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, b.Len())
}

func TestUpdateBuilder_EmptySet(t *testing.T) {
	b := NewUpdateBuilder("ownerships", OwnershipUpdatableColumns)

	_, _, err := b.Build(1)
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
}

func TestUpdateBuilder_NilValueIsAssignment(t *testing.T) {
	b := NewUpdateBuilder("ownerships", OwnershipUpdatableColumns)
	require.NoError(t, b.Set("end_date", nil))

	assert.True(t, b.Has("end_date"))
	v, ok := b.Value("end_date")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, args, err := b.Build(2)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{nil, int64(2)}, args)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"units"`, quoteIdent("units"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}
