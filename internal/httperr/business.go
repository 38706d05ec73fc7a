package httperr

import "errors"

const (
	CodeNotFound = "not_found"
	CodeConflict = "conflict"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return IsBusiness(err, CodeNotFound)
}

func IsConflict(err error) bool {
	return IsBusiness(err, CodeConflict)
}
