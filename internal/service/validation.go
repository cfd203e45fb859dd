package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "committee-tracker-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05Z07:00"
	defaultPageSize = 20
	maxPageSize     = 100
)

// validate runs struct validation and turns the first failing field into a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(toSnakeCase(fe.Field()), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must use the %s format", fe.Param())
	}
	return fmt.Sprintf("failed the %s check", fe.Tag())
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// paginate clamps page and pageSize and returns the row offset
func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// parseDateRange parses two YYYY-MM-DD dates and checks end >= start
func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}
