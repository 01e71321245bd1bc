package repository

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "copro-backend/internal/errors"
)

// Assignable columns per table. Anything not listed here can never reach a SET clause.
var (
	OwnershipUpdatableColumns = []string{
		"ownership_percentage",
		"start_date",
		"end_date",
		"purchase_price",
		"notary_reference",
		"is_primary_residence",
		"is_rental_property",
	}
	UnitUpdatableColumns = []string{
		"unit_number",
		"floor",
		"unit_type",
		"surface_area",
		"millieme",
		"description",
		"balcony_area",
		"garage_included",
		"storage_included",
	}
)

// UpdateBuilder assembles a parameterized single-row UPDATE from a column to value mapping.
// Columns are emitted in the order they were first set.
type UpdateBuilder struct {
	table   string
	allowed map[string]struct{}
	columns []string
	values  map[string]interface{}
}

// NewUpdateBuilder creates a builder for table that accepts only the given columns
func NewUpdateBuilder(table string, allowed []string) *UpdateBuilder {
	set := make(map[string]struct{}, len(allowed))
	for _, c := range allowed {
		set[c] = struct{}{}
	}
	return &UpdateBuilder{
		table:   table,
		allowed: set,
		values:  make(map[string]interface{}),
	}
}

// Set assigns value to column. Setting a column twice keeps its first position and the last value.
func (b *UpdateBuilder) Set(column string, value interface{}) error {
	if _, ok := b.allowed[column]; !ok {
		return apperrors.NewValidationError(column, fmt.Sprintf("column %q cannot be updated", column))
	}
	if _, seen := b.values[column]; !seen {
		b.columns = append(b.columns, column)
	}
	b.values[column] = value
	return nil
}

// Has reports whether column has been assigned
func (b *UpdateBuilder) Has(column string) bool {
	_, ok := b.values[column]
	return ok
}

// Value returns the value assigned to column
func (b *UpdateBuilder) Value(column string) (interface{}, bool) {
	v, ok := b.values[column]
	return v, ok
}

// Len returns the number of assigned columns
func (b *UpdateBuilder) Len() int {
	return len(b.columns)
}

// Columns returns the assigned columns in emission order
func (b *UpdateBuilder) Columns() []string {
	out := make([]string, len(b.columns))
	copy(out, b.columns)
	return out
}

// Build renders the statement for the row with the given id.
// The id is always the last positional parameter.
func (b *UpdateBuilder) Build(id int64) (string, []interface{}, error) {
	if len(b.columns) == 0 {
		return "", nil, apperrors.ErrNoFieldsToUpdate
	}

	var sb strings.Builder
	args := make([]interface{}, 0, len(b.columns)+1)

	sb.WriteString("UPDATE ")
	sb.WriteString(quoteIdent(b.table))
	sb.WriteString(" SET ")
	for i, col := range b.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteIdent(col))
		sb.WriteString(" = $")
		sb.WriteString(strconv.Itoa(i + 1))
		args = append(args, b.values[col])
	}
	sb.WriteString(`, "updated_at" = NOW() WHERE "id" = $`)
	sb.WriteString(strconv.Itoa(len(b.columns) + 1))
	sb.WriteString(" RETURNING *")
	args = append(args, id)

	return sb.String(), args, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
