package backend

import "errors"

// ErrBusiness marks failures reported by the backend itself (success=false or an error field).
var ErrBusiness = errors.New("backend rejected request")

// BusinessError carries the backend's own failure message.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return ErrBusiness.Error()
	}
	return e.Message
}

// Is reports ErrBusiness as the sentinel for every BusinessError.
func (e *BusinessError) Is(target error) bool {
	return target == ErrBusiness
}

// Reason returns the backend message when err is a BusinessError, otherwise fallback.
func Reason(err error, fallback string) string {
	var be *BusinessError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
