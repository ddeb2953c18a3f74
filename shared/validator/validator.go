// Package validator decodes request bodies and checks them against `validate` tags.
// Violations come back as 400 failures naming the json field.
package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"servicehub/shared/constant"
	"servicehub/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})

	if err := v.RegisterValidation("money", isMoney); err != nil {
		panic(err)
	}

	return v
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// decimalValue lets tag validators see decimal amounts as their canonical string.
func decimalValue(field reflect.Value) any {
	switch amount := field.Interface().(type) {
	case decimal.Decimal:
		return amount.String()
	case decimal.NullDecimal:
		if amount.Valid {
			return amount.Decimal.String()
		}
	}

	return nil
}

// isMoney accepts strictly positive amounts with at most two fractional digits.
func isMoney(field val.FieldLevel) bool {
	raw, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return amount.IsPositive() && amount.Mul(decimal.NewFromInt(constant.MinorUnitFactor)).IsInteger()
}

// Validate decodes one JSON document from r into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err))
	}

	return nil
}

// ValidateID checks a path id before it reaches a uuid column.
func ValidateID(id string) error {
	if err := validate.Var(id, "required,uuid"); err != nil {
		return failure.BadRequestFromString("id must be a valid uuid")
	}

	return nil
}
