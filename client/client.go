package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Wjpayne/Inventory-Management/controllers"
	"github.com/Wjpayne/Inventory-Management/models"
)

// ErrNotFound is returned when the service reports no item for the given id.
var ErrNotFound = errors.New("item not found")

// Client is a typed wrapper around the /items REST surface.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Create(ctx context.Context, payload controllers.ItemPayload) (models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPost, "/items", payload, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *Client) Update(ctx context.Context, id uint, payload controllers.ItemPayload) (models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), payload, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	var ack controllers.SuccessResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, &ack); err != nil {
		return err
	}
	if !ack.Success {
		return errors.New("delete was not acknowledged")
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		var errBody controllers.ErrorResponse
		if decodeErr := json.NewDecoder(res.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return fmt.Errorf("server returned %d: %s", res.StatusCode, errBody.Error)
		}
		return fmt.Errorf("server returned %d", res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
