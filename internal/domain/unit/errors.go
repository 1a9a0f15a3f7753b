package unit

import "errors"

var (
	ErrUnitNotFound = errors.New("organizational unit not found")
)
