package filtering

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// CriteriaError descreve critérios inválidos, campo a campo.
type CriteriaError struct {
	Fields map[string]string
}

func (e *CriteriaError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, rule))
	}
	sort.Strings(parts)
	return "invalid filter criteria: " + strings.Join(parts, ", ")
}

// Validator valida critérios contra a enumeração de produtos do dataset.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(products []domain.Product) *Validator {
	allowed := make(map[domain.Product]bool, len(products))
	for _, p := range products {
		allowed[p] = true
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// O erro de registro só ocorre com tag vazia
	_ = validate.RegisterValidation("product", func(fl validator.FieldLevel) bool {
		return allowed[domain.Product(fl.Field().String())]
	})

	return &Validator{validate: validate}
}

// Validate retorna *CriteriaError quando algum campo viola as regras.
func (v *Validator) Validate(criteria domain.FilterCriteria) error {
	err := v.validate.Struct(criteria)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		fields[ve.Field()] = ve.Tag()
	}

	return &CriteriaError{Fields: fields}
}
