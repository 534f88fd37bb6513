package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMobileExists       = errors.New("mobile number already registered")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidBankCode    = errors.New("unknown bank code")
)
