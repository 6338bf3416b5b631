package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

// Response is a fully read HTTP response.
type Response struct {
	Body        []byte
	ContentType string
	// FinalURL is the request URL after redirects.
	FinalURL string
	Status   int
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Get performs a GET request and reads the whole body. Responses of any
// status are returned without error.
func Get(ctx context.Context, client *http.Client, url string, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for name, values := range header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
		Status:      resp.StatusCode,
	}, nil
}
