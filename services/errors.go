package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error wraps exactly one of these, so callers can
// branch with errors.Is(err, services.ErrNotFound) and so on.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrReferential = errors.New("referential integrity violation")
)

// Error is a domain failure raised at the point of violation
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the error kind to errors.Is
func (e *Error) Unwrap() error {
	return e.Kind
}

func notFound(code, format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

func invalid(code, format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func conflict(code, format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Code: code, Message: fmt.Sprintf(format, args...)}
}

func referential(code, format string, args ...interface{}) error {
	return &Error{Kind: ErrReferential, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error codes returned to API clients
const (
	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeTableNotFound     = "TABLE_NOT_FOUND"
	CodeCategoryNotFound  = "CATEGORY_NOT_FOUND"
	CodeMenuItemNotFound  = "MENU_ITEM_NOT_FOUND"
	CodeMissingField      = "MISSING_FIELD"
	CodeEmptyItems        = "EMPTY_ITEMS"
	CodeInvalidItem       = "INVALID_ITEM"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeInvalidOrderType  = "INVALID_ORDER_TYPE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeInvalidPrice      = "INVALID_PRICE"
	CodeInvalidCategory   = "INVALID_CATEGORY"
	CodeInvalidNumber     = "INVALID_TABLE_NUMBER"
	CodeInvalidCapacity   = "INVALID_CAPACITY"
	CodeTableExists       = "TABLE_NUMBER_EXISTS"
	CodeSlugExists        = "CATEGORY_SLUG_EXISTS"
	CodeNameExists        = "CATEGORY_NAME_EXISTS"
	CodeCategoryInUse     = "CATEGORY_IN_USE"
	CodeTableInUse        = "TABLE_HAS_ACTIVE_ORDERS"
)
