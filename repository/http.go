package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const maxBodyBytes = 4 << 20

// do sends a single request to the books API. body, when not nil, is encoded as
// JSON; a 2xx payload is decoded into dst when dst is not nil. There are no retries.
func (r *repository) do(ctx context.Context, method, path string, body any, dst any) error {
	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(js)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.endpoint(path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response body: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, payload)
	}
	if dst == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnexpectedResponse, method, path, err)
	}
	return nil
}

// endpoint joins path onto the base URL, keeping any path prefix of the base.
func (r *repository) endpoint(path string) string {
	u := *r.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = ""
	return u.String()
}

// decodeError turns a non-2xx response into an *APIError when its body is a JSON
// document, and into ErrUnexpectedResponse otherwise (e.g. an HTML error page).
func decodeError(resp *http.Response, payload []byte) error {
	if !isJSON(resp.Header.Get("Content-Type")) && !mimetype.Detect(payload).Is("application/json") {
		return fmt.Errorf("%w: %s (%s body)", ErrUnexpectedResponse, resp.Status, mimetype.Detect(payload).String())
	}
	var envelope struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnexpectedResponse, resp.Status, err)
	}
	message := http.StatusText(resp.StatusCode)
	if envelope.Error != nil {
		message = *envelope.Error
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Message:    message,
	}
}

func isJSON(contentType string) bool {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType) == "application/json"
}
