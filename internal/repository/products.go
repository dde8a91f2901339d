// Package repository provides data access for the product catalog.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// ProductDocument represents a product as stored in MongoDB. Prices are
// stored as Decimal128 so cents never pick up binary float error.
type ProductDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Price       primitive.Decimal128 `bson:"price"`
	ShopID      primitive.ObjectID   `bson:"shop_id"`
	Category    string               `bson:"category,omitempty"`
	Description string               `bson:"description,omitempty"`
	Location    string               `bson:"location,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

// toDecimal128 converts a domain price to its Decimal128 storage form.
func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

// fromDecimal128 converts a stored price back to a domain decimal.
func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

func toProductDocument(p model.Product) (ProductDocument, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return ProductDocument{}, fmt.Errorf("invalid price %q: %w", p.Price.String(), err)
	}

	shopID, err := primitive.ObjectIDFromHex(p.ShopID)
	if err != nil {
		return ProductDocument{}, fmt.Errorf("invalid shop id %q: %w", p.ShopID, err)
	}

	return ProductDocument{
		Name:        p.Name,
		Price:       price,
		ShopID:      shopID,
		Category:    p.Category,
		Description: p.Description,
		Location:    p.Location,
	}, nil
}

func (d ProductDocument) toModel() (model.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return model.Product{}, fmt.Errorf("decode price for product %s: %w", d.ID.Hex(), err)
	}

	return model.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       price,
		ShopID:      d.ShopID.Hex(),
		Category:    d.Category,
		Description: d.Description,
		Location:    d.Location,
	}, nil
}

// ProductRepository provides methods for product catalog operations.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{
		collection: db.Products,
	}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	doc, err := toProductDocument(product)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	created, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns a product by id, or nil if it does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // Malformed ids cannot match any document
	}

	var doc ProductDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	product, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products matching the filter, sorted by name.
func (r *ProductRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := bson.M{}
	if filter.ShopID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.ShopID)
		if err != nil {
			return []model.Product{}, nil
		}
		query["shop_id"] = oid
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexQuoteMeta(filter.Name), Options: "i"}}
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// Update replaces the mutable fields of a product, returning the updated
// document or nil if the product does not exist.
func (r *ProductRepository) Update(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	doc, err := toProductDocument(product)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"name":        doc.Name,
			"price":       doc.Price,
			"shop_id":     doc.ShopID,
			"category":    doc.Category,
			"description": doc.Description,
			"location":    doc.Location,
			"updated_at":  time.Now(),
		},
	}

	var updated ProductDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	result, err := updated.toModel()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// regexQuoteMeta escapes regex metacharacters so user input is matched
// literally in $regex queries.
func regexQuoteMeta(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		for j := 0; j < len(special); j++ {
			if c == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, c)
	}
	return string(out)
}
