package recall

import (
	"context"

	"github.com/Dextersathya/ecommerce-recommendation/catalog"
)

// CatalogAdapter 把内存 catalog.Catalog 适配成 CatalogSource。
type CatalogAdapter struct {
	Catalog *catalog.Catalog
}

func NewCatalogAdapter(c *catalog.Catalog) *CatalogAdapter {
	return &CatalogAdapter{Catalog: c}
}

func (a *CatalogAdapter) Products(ctx context.Context) ([]string, error) {
	return a.Catalog.Products(), nil
}

func (a *CatalogAdapter) ProductFeatures(ctx context.Context, productID string) (map[string]float64, bool, error) {
	features, ok := a.Catalog.Features(productID)
	return features, ok, nil
}

var _ CatalogSource = (*CatalogAdapter)(nil)
