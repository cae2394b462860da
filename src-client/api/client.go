// Package api is the client side of the /api/events contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventcal/src-client/calendar"
)

// Error is a non-2xx answer from the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient talks to the API rooted at baseURL, e.g. http://localhost:8080/api.
// A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		reqBodyJson, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(reqBodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil || detail.Error == "" {
			detail.Error = "Unknown error"
		}
		return &Error{Status: resp.StatusCode, Message: detail.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: %s %s: can't decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	var respBody struct {
		Ok bool `json:"ok"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &respBody); err != nil {
		return err
	}
	if !respBody.Ok {
		return fmt.Errorf("api: health check not ok")
	}
	return nil
}

// List fetches the events starting in the month of the given cursor.
func (c *Client) List(ctx context.Context, month time.Time) ([]calendar.Event, error) {
	var respBody struct {
		Events []calendar.Event `json:"events"`
	}
	path := "/events?month=" + month.Format("2006-01")
	if err := c.do(ctx, http.MethodGet, path, nil, &respBody); err != nil {
		return nil, err
	}
	if respBody.Events == nil {
		respBody.Events = []calendar.Event{}
	}
	return respBody.Events, nil
}

func (c *Client) Create(ctx context.Context, payload calendar.Payload) (int64, error) {
	var respBody struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/events", payload, &respBody); err != nil {
		return 0, err
	}
	return respBody.ID, nil
}

func (c *Client) Update(ctx context.Context, id int64, payload calendar.Payload) error {
	return c.do(ctx, http.MethodPut, "/events/"+strconv.FormatInt(id, 10), payload, nil)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/events/"+strconv.FormatInt(id, 10), nil, nil)
}
