package atomfile

import "errors"

var (
	ErrDecode = errors.New("atomfile: decode error")
)
