package service

import (
	"errors"
	"fmt"

	"catalog/models"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateSKU     = errors.New("duplicate sku")
	ErrValidation       = errors.New("validation failed")
)

// ValidationError reports input rejected before any store access.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Fields.Error())
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, rule, param string) *ValidationError {
	return &ValidationError{Fields: models.FieldErrors{{Field: field, Rule: rule, Param: param}}}
}

// DuplicateSKUError is returned whether the clash was caught by the
// pre-check or by the unique index.
type DuplicateSKUError struct {
	SKU string
}

func (e *DuplicateSKUError) Error() string {
	return fmt.Sprintf("product with SKU %s already exists", e.SKU)
}

func (e *DuplicateSKUError) Is(target error) bool {
	return target == ErrDuplicateSKU
}

// StoreError wraps any other persistence failure and keeps its message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
