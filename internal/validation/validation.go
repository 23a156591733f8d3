// Package validation wires go-playground/validator into echo and turns its
// field errors into the messages returned to the client.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/textnorm"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// New registers the json tag name func and the domain tags.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	if err := registerTags(v, customTags); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

var customTags = map[string]validator.Func{
	"cep": func(fl validator.FieldLevel) bool {
		return len(textnorm.Digits(fl.Field().String())) == 8
	},
	"uf": func(fl validator.FieldLevel) bool {
		return validState(fl.Field().String())
	},
}

func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return nil
}

// Validate returns an apperr validation error describing the first failing field.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperr.Validation("%s", Describe(err))
	}
	return nil
}

var states = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true, "DF": true,
	"ES": true, "GO": true, "MA": true, "MT": true, "MS": true, "MG": true, "PA": true,
	"PB": true, "PR": true, "PE": true, "PI": true, "RJ": true, "RN": true, "RS": true,
	"RO": true, "RR": true, "SC": true, "SP": true, "SE": true, "TO": true,
}

func validState(s string) bool {
	return states[strings.ToUpper(strings.TrimSpace(s))]
}

// Describe renders the first field error as "membros[1].dataNascimento: ...".
func Describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err.Error()
	}
	fe := ve[0]
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	return field + ": " + message(fe)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("informe ao menos %s item(ns)", fe.Param())
		}
		return fmt.Sprintf("deve ter ao menos %s caracteres", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("informe no máximo %s item(ns)", fe.Param())
		}
		return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
	case "gt", "gte":
		return "valor inválido"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "datetime":
		return "data inválida, use AAAA-MM-DD"
	case "cep":
		return "CEP deve ter 8 dígitos"
	case "uf":
		return "sigla de estado inválida"
	}
	return fmt.Sprintf("falhou na regra %q", fe.Tag())
}
