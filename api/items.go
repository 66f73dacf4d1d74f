package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/Fmfizzy/PizzaPOS/menu"
)

// Items lists every menu item.
func (c *Client) Items(ctx context.Context) ([]menu.Record, error) {
	var out []menu.Record
	if err := c.getJSON(ctx, "/api/items", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ItemsByCategory lists the items of one category.
func (c *Client) ItemsByCategory(ctx context.Context, category menu.Category) ([]menu.Record, error) {
	var out []menu.Record
	if err := c.getJSON(ctx, "/api/items/"+url.PathEscape(string(category)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem adds a menu item. Pizza prices are set separately with
// CreatePizzaPrice.
func (c *Client) CreateItem(ctx context.Context, req CreateItemRequest) (menu.Record, error) {
	var out menu.Record
	err := c.doJSON(ctx, http.MethodPost, "/api/items", req, &out)
	return out, err
}

// UpdateItem changes the fields set in req.
func (c *Client) UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (menu.Record, error) {
	var out menu.Record
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), req, &out)
	return out, err
}

// DeleteItem removes a menu item.
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil)
}

// UploadImage sends an image as the multipart field "image" and returns the
// stored path to reference from an item's image_path.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	const path = "/api/upload"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return "", errors.Wrap(err, "create multipart field")
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Wrapf(err, "read %s", filename)
	}
	if err := mw.Close(); err != nil {
		return "", errors.Wrap(err, "close multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", errors.Wrapf(err, "create request POST %s", path)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := c.do(req, path, &out); err != nil {
		return "", err
	}
	if out.FilePath == "" {
		return "", errors.Newf("POST %s: response has no filepath", path)
	}
	return out.FilePath, nil
}

// CreateMenuItem validates an item and creates it the way the manage-items
// form does: the item first, then one price per size for a pizza. A failed
// size price leaves the item in place; the error names the size.
func (c *Client) CreateMenuItem(ctx context.Context, item menu.Item) (menu.Record, error) {
	if err := menu.Validate(item); err != nil {
		return menu.Record{}, err
	}
	info := item.Details()
	req := CreateItemRequest{
		Name:        info.Name,
		Category:    string(info.Category),
		Description: info.Description,
		ImagePath:   info.ImagePath,
	}

	switch it := item.(type) {
	case *menu.Beverage:
		price := it.Price.InexactFloat64()
		req.Price = &price
		req.Category = string(menu.CategoryBeverage)
		return c.CreateItem(ctx, req)

	case *menu.Pizza:
		req.Category = string(menu.CategoryPizza)
		created, err := c.CreateItem(ctx, req)
		if err != nil {
			return menu.Record{}, err
		}
		for _, size := range menu.Sizes {
			_, err := c.CreatePizzaPrice(ctx, PizzaPriceRequest{
				ItemID: created.ID,
				Size:   string(size),
				Price:  it.Prices[size].InexactFloat64(),
			})
			if err != nil {
				return created, errors.Wrapf(err, "set %s price for item %d", size, created.ID)
			}
		}
		return created, nil
	}
	return menu.Record{}, errors.Newf("unsupported menu item %T", item)
}
