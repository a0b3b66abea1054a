package loan

import "errors"

var ErrNotFound = errors.New("loan not found")
