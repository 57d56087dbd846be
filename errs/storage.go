package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrStorageQuery      = errors.New("storage operation failed")
	ErrStorageConnection = errors.New("storage connection failed")
)

// NewStorageError wraps a document-store failure. The cause is kept for
// server-side logging; clients only ever see the generic message.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageQuery,
		Details:    fmt.Sprintf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorageQuery) || errors.Is(err, ErrStorageConnection)
}
