package domain

import "errors"

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidKind       = errors.New("unknown promotion kind")
	ErrInvalidScope      = errors.New("unknown promotion scope")
	ErrInvalidReduction  = errors.New("reduction percent must be between 0 and 100")
	ErrInvalidWindow     = errors.New("valid_from must not be after valid_to")
	ErrCodeRequired      = errors.New("code promotions require a redemption code")
	ErrEmptyCart         = errors.New("cart partition is empty")
)
