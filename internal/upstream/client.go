package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hr-console/hr-console-gateway/internal/config"
)

// Client is a resty-backed wrapper around the remote HR REST API. It returns
// raw wire shapes; mapping to view models happens in the services.
type Client struct {
	http *resty.Client
}

// NewClient builds an HR API client from the provided configuration values.
func NewClient(cfg config.UpstreamConfig) *Client {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{http: restyClient}
}

// APIError represents a non-2xx reply from the HR API. Message carries the
// server-supplied text when the body has one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hr api error [%d]: %s", e.StatusCode, e.Message)
}

// apiError extracts the {"message": ...} body the HR API uses for failures,
// falling back to the status text.
func apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)

	message := body.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    message,
	}
}
