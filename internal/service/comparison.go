package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// PriceComparator defines the interface for price comparison operations.
// Compare is a pure function of the (list, catalog) snapshot: it performs no
// I/O, holds no state, and is safe to call concurrently.
type PriceComparator interface {
	Compare(list model.ShoppingList, catalog []model.ShopCatalog) model.ComparisonResult
}

// CatalogIndex maps shop ids to their catalogs with a deterministic
// iteration order (shop id ascending), so repeated comparisons over the same
// snapshot yield identical results regardless of input order.
type CatalogIndex struct {
	order []string
	shops map[string]model.ShopCatalog
}

// NewCatalogIndex builds an index from a grouped catalog. Shops appearing
// more than once have their product lists merged. An empty input yields an
// empty index.
func NewCatalogIndex(catalog []model.ShopCatalog) CatalogIndex {
	idx := CatalogIndex{shops: make(map[string]model.ShopCatalog, len(catalog))}
	for _, sc := range catalog {
		existing, ok := idx.shops[sc.Shop.ID]
		if !ok {
			idx.order = append(idx.order, sc.Shop.ID)
			idx.shops[sc.Shop.ID] = sc
			continue
		}
		existing.Products = append(existing.Products, sc.Products...)
		idx.shops[sc.Shop.ID] = existing
	}
	sort.Strings(idx.order)
	return idx
}

// IndexProducts groups a flat product sequence under the given shops,
// preserving every product field. Products referencing unknown shops are
// dropped; shops without products are kept with an empty product list.
func IndexProducts(shops []model.Shop, products []model.Product) []model.ShopCatalog {
	byShop := make(map[string]*model.ShopCatalog, len(shops))
	catalog := make([]model.ShopCatalog, 0, len(shops))
	for _, s := range shops {
		catalog = append(catalog, model.ShopCatalog{Shop: s})
		byShop[s.ID] = &catalog[len(catalog)-1]
	}
	for _, p := range products {
		if sc, ok := byShop[p.ShopID]; ok {
			sc.Products = append(sc.Products, p)
		}
	}
	return catalog
}

// ShopIDs returns the indexed shop ids in ascending order.
func (idx CatalogIndex) ShopIDs() []string {
	return idx.order
}

// Catalog returns the shop catalog for the given shop id.
func (idx CatalogIndex) Catalog(shopID string) (model.ShopCatalog, bool) {
	sc, ok := idx.shops[shopID]
	return sc, ok
}

// Len returns the number of indexed shops.
func (idx CatalogIndex) Len() int {
	return len(idx.order)
}

// matchItem resolves one list item against one shop's products.
//
// An explicit product reference wins whenever the referenced product is in
// this shop's list, regardless of name or price. Otherwise the item name is
// matched case-insensitively as a substring of product names, and ambiguity
// resolves toward the cheapest candidate (price tie: smallest product id).
// Absence of a match is a normal outcome, not a failure.
func matchItem(item model.ShoppingListItem, products []model.Product) (model.Product, bool) {
	if item.ProductID != "" {
		for _, p := range products {
			if p.ID == item.ProductID {
				return p, true
			}
		}
	}

	name := strings.ToLower(strings.TrimSpace(item.Name))
	if name == "" {
		return model.Product{}, false
	}

	var best model.Product
	found := false
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if !found {
			best, found = p, true
			continue
		}
		if c := p.Price.Cmp(best.Price); c < 0 || (c == 0 && p.ID < best.ID) {
			best = p
		}
	}
	return best, found
}

// buildRow aggregates the whole list against a single shop. Malformed items
// (blank name or non-positive quantity) count as unavailable lines; one bad
// line never blocks the rest of the comparison.
func buildRow(list model.ShoppingList, sc model.ShopCatalog) model.ShopComparisonRow {
	row := model.ShopComparisonRow{
		ShopID:     sc.Shop.ID,
		ShopName:   sc.Shop.Name,
		Items:      make([]model.ItemResult, 0, len(list.Items)),
		TotalPrice: decimal.Zero,
		TotalItems: len(list.Items),
	}

	for _, item := range list.Items {
		result := model.ItemResult{
			ItemName: item.Name,
			Quantity: item.Quantity,
		}

		if item.Valid() {
			if product, ok := matchItem(item, sc.Products); ok {
				price := product.Price
				total := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
				result.ProductID = product.ID
				result.Price = &price
				result.Total = &total
				result.Available = true

				row.TotalPrice = row.TotalPrice.Add(total)
				row.AvailableItems++
			}
		}

		row.Items = append(row.Items, result)
	}

	return row
}

// ComparatorService implements PriceComparator.
type ComparatorService struct{}

// NewComparatorService creates a new ComparatorService.
func NewComparatorService() *ComparatorService {
	return &ComparatorService{}
}

// Compare builds one ShopComparisonRow per indexed shop and selects the best
// option among shops with at least one available item: lowest total price,
// ties broken by higher availability, then by shop id ascending. When no
// shop carries any list item the best option is nil.
func (s *ComparatorService) Compare(list model.ShoppingList, catalog []model.ShopCatalog) model.ComparisonResult {
	idx := NewCatalogIndex(catalog)

	rows := make([]model.ShopComparisonRow, 0, idx.Len())
	for _, shopID := range idx.ShopIDs() {
		sc, _ := idx.Catalog(shopID)
		rows = append(rows, buildRow(list, sc))
	}

	return model.ComparisonResult{
		Rows: rows,
		Best: selectBest(rows),
	}
}

// selectBest picks the winning row among eligible ones. Rows arrive sorted
// by shop id ascending, so keeping the current winner on a full tie yields
// the smallest shop id.
func selectBest(rows []model.ShopComparisonRow) *model.BestOption {
	var best *model.ShopComparisonRow
	for i := range rows {
		row := &rows[i]
		if row.AvailableItems < 1 {
			continue
		}
		if best == nil || betterRow(row, best) {
			best = row
		}
	}
	if best == nil {
		return nil
	}
	return &model.BestOption{
		ShopID:         best.ShopID,
		ShopName:       best.ShopName,
		TotalPrice:     best.TotalPrice,
		AvailableItems: best.AvailableItems,
		TotalItems:     best.TotalItems,
	}
}

func betterRow(candidate, current *model.ShopComparisonRow) bool {
	switch candidate.TotalPrice.Cmp(current.TotalPrice) {
	case -1:
		return true
	case 1:
		return false
	}
	return candidate.AvailableItems > current.AvailableItems
}
