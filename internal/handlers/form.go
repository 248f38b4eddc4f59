package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
)

// Messages shared by several pages.
const (
	msgInternalError = "Ocurrió un error, inténtalo más tarde."
	msgBadForm       = "No pudimos leer el formulario."
)

var validate = newValidator()

// newValidator reports fields by their form name rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateForm checks form against its validate tags and returns one
// FieldError per failing field, in declaration order.
func validateForm(form any) []models.FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		logger.Log.Errorw("form validation failed", "err", err)
		return []models.FieldError{{Field: "form", Message: msgBadForm}}
	}

	fieldErrs := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, models.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Puedes ingresar como máximo %s elementos.", fe.Param())
		}
		return fmt.Sprintf("Debe tener como máximo %s caracteres.", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual a %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual a %s.", fe.Param())
	case "eqfield":
		return "Las contraseñas no coinciden."
	default:
		return "Valor inválido."
	}
}

// writeJSON renders a view model with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// formValue returns the trimmed value of key.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}
