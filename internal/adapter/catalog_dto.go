package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-cart-keeper/models"
)

// remoteProduct is the union of the product shapes the catalog has served.
// decimal.Decimal accepts both JSON numbers and quoted strings for prices.
type remoteProduct struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Images      []string         `json:"images"`
	Variants    []remoteVariant  `json:"variants"`
}

type remoteVariant struct {
	ProductPrice *decimal.Decimal `json:"product_price"`
}

// toModel normalises the remote shape. ok is false when the entry has no
// usable id, name or price.
func (r remoteProduct) toModel() (models.Product, bool) {
	name := strings.TrimSpace(r.Name)
	if r.ID <= 0 || name == "" {
		return models.Product{}, false
	}

	price := r.Price
	if price == nil && len(r.Variants) > 0 {
		price = r.Variants[0].ProductPrice
	}
	if price == nil {
		return models.Product{}, false
	}

	image := r.Image
	if image == "" && len(r.Images) > 0 {
		image = r.Images[0]
	}

	return models.Product{
		ID:          r.ID,
		Name:        name,
		Price:       *price,
		Description: r.Description,
		Image:       image,
	}, true
}

// decodeCatalog accepts either a bare JSON array of products or an object
// wrapping it under "products".
func decodeCatalog(body []byte) ([]remoteProduct, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidCatalogResponse)
	}

	if body[0] == '[' {
		var list []remoteProduct
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogResponse, err)
		}
		return list, nil
	}

	var wrapped struct {
		Products []remoteProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogResponse, err)
	}
	return wrapped.Products, nil
}
