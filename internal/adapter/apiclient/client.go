package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

var _ port.CatalogFetcher = (*Client)(nil)

const (
	productsPath   = "/products"
	categoriesPath = "/products/categories"
)

// A Client reads the product collection and the category vocabulary from
// the remote catalog API. Requests carry no parameters.
type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string, hc *http.Client) Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (c Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.FetchProducts"

	var ps []domain.Product
	if err := c.getJSON(ctx, productsPath, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (c Client) FetchCategories(ctx context.Context) ([]string, error) {
	const op = "Client.FetchCategories"

	var cs []string
	if err := c.getJSON(ctx, categoriesPath, &cs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (c Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, nil,
	)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON data: %w", err)
	}
	return nil
}
