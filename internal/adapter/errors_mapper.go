package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/avdeev/go-coursebook/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		var validationErrors models.ValidationErrors
		if err := json.Unmarshal(resp.Body(), &validationErrors); err == nil && len(validationErrors.Errors) > 0 {
			return &ValidationFailedError{Messages: validationErrors.Errors}
		}
		return &ValidationFailedError{Messages: []string{messageFromBody(resp)}}
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, messageFromBody(resp))
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, messageFromBody(resp))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, messageFromBody(resp))
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, messageFromBody(resp))
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), messageFromBody(resp))
	}
}

// messageFromBody extracts the "message" field of a JSON error body, falling
// back to the raw body and then the status text.
func messageFromBody(resp *resty.Response) string {
	var apiMessage models.APIMessage
	if err := json.Unmarshal(resp.Body(), &apiMessage); err == nil && apiMessage.Message != "" {
		return apiMessage.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
