package discount

import "errors"

var (
	ErrDiscountNotFound  = errors.New("discount not found")
	ErrDuplicateCode     = errors.New("discount code already exists")
	ErrUsageLimitReached = errors.New("discount usage limit reached")
)
