package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError names one rejected field by its JSON path.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s failed %s", e.Field, e.Rule)
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}

// ValidateInput checks a create payload. It returns nil when the input is valid.
func ValidateInput(in ProductInput) FieldErrors {
	return structErrors(in, "")
}

// ValidateUpdate checks only the fields a patch supplies. Clearing is
// accepted for description alone.
func ValidateUpdate(u ProductUpdateInput) FieldErrors {
	var errs FieldErrors

	requireText := func(field string, o Optional[string]) {
		if o.Set && (o.Null || o.Value == "") {
			errs = append(errs, FieldError{Field: field, Rule: "required"})
		}
	}
	requireText("name", u.Name)
	requireText("sku", u.SKU)
	requireText("category", u.Category)

	if u.Price.Set {
		switch {
		case u.Price.Null:
			errs = append(errs, FieldError{Field: "price", Rule: "required"})
		case u.Price.Value < 0:
			errs = append(errs, FieldError{Field: "price", Rule: "gte", Param: "0"})
		}
	}
	if u.AmountInStock.Set {
		switch {
		case u.AmountInStock.Null:
			errs = append(errs, FieldError{Field: "amountInStock", Rule: "required"})
		case u.AmountInStock.Value < 0:
			errs = append(errs, FieldError{Field: "amountInStock", Rule: "gte", Param: "0"})
		}
	}
	if u.Manufacturer.Set {
		if u.Manufacturer.Null {
			errs = append(errs, FieldError{Field: "manufacturer", Rule: "required"})
		} else {
			errs = append(errs, structErrors(u.Manufacturer.Value, "manufacturer")...)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func structErrors(s any, prefix string) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{{Field: prefix, Rule: err.Error()}}
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "<Type>.<path>"; drop the type name.
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		if prefix != "" {
			path = prefix + "." + path
		}
		out = append(out, FieldError{Field: path, Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
