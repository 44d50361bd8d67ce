package twitterclient

import (
	"errors"
	"fmt"

	"github.com/WangWilly/xRest/pkgs/commonpkg/utils"
)

// Error definitions
var (
	ErrWouldBlock = fmt.Errorf("EWOULDBLOCK")
)

// MissingParamError reports a path placeholder without a matching param
type MissingParamError struct {
	Param string
	Path  string
}

func (err *MissingParamError) Error() string {
	return fmt.Sprintf("missing required parameter %q for path %q", err.Param, err.Path)
}

// isKnownError reports errors that carry an API or HTTP verdict
func isKnownError(err error) bool {
	var apiErr *TwitterApiError
	var statusErr *utils.HttpStatusError
	var paramErr *MissingParamError
	return errors.As(err, &apiErr) || errors.As(err, &statusErr) || errors.As(err, &paramErr)
}
