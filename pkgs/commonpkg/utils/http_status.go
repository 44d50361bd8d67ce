package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

////////////////////////////////////////////////////////////////////////////////

// HttpStatusError is returned for any response outside the 2xx range
type HttpStatusError struct {
	Code int
	Msg  string
}

func (err *HttpStatusError) Error() string {
	return fmt.Sprintf("%d %s", err.Code, err.Msg)
}

func NewHttpStatusError(code int, msg string) *HttpStatusError {
	return &HttpStatusError{Code: code, Msg: msg}
}

////////////////////////////////////////////////////////////////////////////////

// CheckRespStatus reports a non-2xx response as *HttpStatusError
func CheckRespStatus(resp *resty.Response) error {
	if resp.StatusCode() >= 200 && resp.StatusCode() < 300 {
		return nil
	}
	msg := http.StatusText(resp.StatusCode())
	if body := resp.String(); body != "" {
		msg = body
	}
	return NewHttpStatusError(resp.StatusCode(), msg)
}

// IsStatusCode checks whether err carries the given http status
func IsStatusCode(err error, code int) bool {
	var statusErr *HttpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == code
	}
	return false
}
