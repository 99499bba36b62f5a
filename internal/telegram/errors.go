package telegram

import (
	"errors"
	"fmt"
	"strconv"
)

// APIError is an "ok": false reply of the Bot API
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// IsBadRequest reports whether err is a 400 reply, which for HTML messages
// usually means entities the API could not parse
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == 400
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
