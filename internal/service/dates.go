package service

import (
	"bytes"
	"encoding/json"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// OptionalDate distinguishes an absent JSON field from an explicit null
type OptionalDate struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the field was present
func (d *OptionalDate) UnmarshalJSON(b []byte) error {
	d.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		d.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d.Value = &s
	return nil
}

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the UTC calendar date
func parseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return models.DateOf(t), nil
	}
	return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}
