package deeplink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"passwordless-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const (
	defaultHTTPTimeoutInSeconds = 10
	maxErrorBodyBytes           = 4096
)

func newHTTPClient(timeoutInSeconds int) *http.Client {
	if timeoutInSeconds <= 0 {
		timeoutInSeconds = defaultHTTPTimeoutInSeconds
	}
	return &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second}
}

// postJSON sends payload to targetURL and decodes a 2xx body into out.
func postJSON(ctx context.Context, client *http.Client, targetURL string, payload, out interface{}) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrLinkGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrLinkGenerationFailed, err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLinkGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("%w: %s", ErrLinkGenerationFailed, fmt.Sprintf(constvars.ErrDevUnexpectedHTTPStatus, resp.StatusCode, req.URL.Host, providerErrorMessage(respBody)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrLinkGenerationFailed, err)
	}
	return nil
}

// providerErrorMessage extracts error.message, which both Firebase and Branch
// use for failures, and falls back to the raw body.
func providerErrorMessage(body []byte) string {
	if message := gjson.GetBytes(body, "error.message"); message.Exists() && message.String() != "" {
		return message.String()
	}
	return string(body)
}
