package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Home errors
var (
	ErrHomeNameNotUnique = errors.New("the home name is already in use")
)

// Bill errors
var (
	ErrBillAmountNotPositive = errors.New("bill amounts must be larger than zero")
	ErrBillDateRequired      = errors.New("bills must have a date")
	ErrBillCategoryUnknown   = errors.New("the bill category is not configured as an electricity subscription for this home")
)
