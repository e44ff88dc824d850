package fetch

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/signadot/objpath/encode"
	"github.com/signadot/objpath/ir"
)

var (
	ErrNoEndpoint   = errors.New("no such endpoint")
	ErrMissingParam = errors.New("missing path parameter")
	ErrBadEndpoint  = errors.New("bad endpoint")
)

// StatusError is returned for responses with a status of 400 or more.
// Body holds the decoded response, or its text if it is not json.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       *ir.Node
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s gave %d/%s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != nil {
		if s, err := encode.String(e.Body, encode.EncodeWire(true)); err == nil {
			msg += ": " + s
		}
	}
	return msg
}
