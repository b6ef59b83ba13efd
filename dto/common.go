package dto

import (
	"fmt"
	"strings"
	"time"

	apperrors "hotelpms/errors"
	"hotelpms/utils"
)

func parseRequiredDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, apperrors.Validation(fmt.Sprintf("%s is required", field))
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.Validation(fmt.Sprintf("%s must be a date in yyyy-mm-dd form", field))
	}
	return t, nil
}
