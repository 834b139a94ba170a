package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"demo-bank-api/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MsgMissingFields   = "Missing required fields"
	MsgAmountPrecision = "Amount cannot have more than 2 decimal places"
	MsgBodyTooLarge    = "Request body too large"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Numeric tags (required, gt, ...) see decimals as float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterStructValidation(transferStructLevel, model.TransferRequest{})
	return v
}

// Balances are stored with two decimal places; finer amounts would be rounded by the database.
func transferStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(model.TransferRequest)
	if !model.HasCentPrecision(req.Amount) {
		sl.ReportError(req.Amount, "Amount", "Amount", "cents", "")
	}
}

// ValidateAndDecode decodes the JSON body into payload and runs struct validation.
// A missing required field wins over any other validation failure.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		if appErr := BodyTooLarge(err); appErr != nil {
			return appErr
		}
		return NewAppError(http.StatusBadRequest, "Invalid request body", nil)
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return NewAppError(http.StatusInternalServerError, "Request validation failed", err)
		}
		for _, fe := range validationErrors {
			if fe.Tag() == "required" {
				return NewAppError(http.StatusBadRequest, MsgMissingFields, nil)
			}
		}
		return NewAppError(http.StatusBadRequest, fieldMessage(validationErrors[0]), nil)
	}

	return nil
}

// BodyTooLarge maps a read error from a size-limited body to a 413. Other errors give nil.
func BodyTooLarge(err error) *AppError {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return NewAppError(http.StatusRequestEntityTooLarge, MsgBodyTooLarge, nil)
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "cents":
		return MsgAmountPrecision
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
