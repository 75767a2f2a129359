package dedup

import "errors"

var ErrInvalidMarkerData = errors.New("invalid marker data")
