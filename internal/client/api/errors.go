package api

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/blogclient/internal/common"
)

// StatusError is a non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is makes a 401 match common.ErrUnauthorized.
func (e *StatusError) Is(target error) bool {
	return target == common.ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}
