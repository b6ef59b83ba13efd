package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	apperrors "hotelpms/errors"
	"hotelpms/models"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
			v := models.RoomType(fl.Field().String())
			for _, t := range models.RoomTypes {
				if v == t {
					return true
				}
			}
			return false
		})
		_ = validate.RegisterValidation("reservationstatus", func(fl validator.FieldLevel) bool {
			return models.ReservationStatus(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("tasktype", func(fl validator.FieldLevel) bool {
			return models.TaskType(fl.Field().String()).Valid()
		})
	})
	return validate
}

// ValidateStruct runs the struct tags of v and reports the first failures as a
// VALIDATION_ERROR.
func ValidateStruct(v interface{}) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "invalid request", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperrors.NewAppError(apperrors.ErrCodeValidation, strings.Join(msgs, "; "), nil)
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", field, lowerFirst(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
