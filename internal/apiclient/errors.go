package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

// StatusError is a non-2xx answer from the API. It unwraps to the matching
// domain sentinel so callers can use errors.Is.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// decodeError turns an error response into *domain.ValidationError for 400
// with issues, or *StatusError otherwise.
func decodeError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	var payload api.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		payload.Error = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusBadRequest && len(payload.Issues) > 0 {
		return &domain.ValidationError{Issues: payload.Issues}
	}

	return &StatusError{StatusCode: resp.StatusCode, Message: payload.Error}
}

func isTemporary(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return false
}
