package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// File storage errors. A storage failure never leaves a partially committed
// entity behind; the whole submission is reported back as failed.
var (
	ErrStorageFailure       = errors.New("file storage failure")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)

func NewStorageError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageFailure,
		Details:    fmt.Sprintf("Failed to %s", operation),
		Cause:      cause,
	}
}

func NewUnsupportedExtensionError(ext string, allowed []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedExtension,
		Details:    fmt.Sprintf("Extension %q is not allowed. Allowed extensions: %v", ext, allowed),
		Field:      "file",
	}
}

func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

func IsUnsupportedExtension(err error) bool {
	return errors.Is(err, ErrUnsupportedExtension)
}
