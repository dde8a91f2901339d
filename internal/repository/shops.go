// Package repository provides data access for shops.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/shoplist-service/internal/domain/model"
)

// ShopDocument represents a shop as stored in MongoDB.
type ShopDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Location  string             `bson:"location,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d ShopDocument) toModel() model.Shop {
	return model.Shop{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Location: d.Location,
	}
}

// ShopRepository provides methods for shop operations.
type ShopRepository struct {
	collection *mongo.Collection
}

// NewShopRepository creates a new shop repository.
func NewShopRepository(db *MongoDB) *ShopRepository {
	return &ShopRepository{
		collection: db.Shops,
	}
}

// Create inserts a new shop.
func (r *ShopRepository) Create(ctx context.Context, shop model.Shop) (*model.Shop, error) {
	doc := ShopDocument{
		ID:        primitive.NewObjectID(),
		Name:      shop.Name,
		Location:  shop.Location,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	created := doc.toModel()
	return &created, nil
}

// GetByID returns a shop by id, or nil if it does not exist.
func (r *ShopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc ShopDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	shop := doc.toModel()
	return &shop, nil
}

// List returns all shops sorted by name.
func (r *ShopRepository) List(ctx context.Context) ([]model.Shop, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ShopDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	shops := make([]model.Shop, 0, len(docs))
	for _, doc := range docs {
		shops = append(shops, doc.toModel())
	}
	return shops, nil
}

// Update replaces the mutable fields of a shop, returning the updated
// document or nil if the shop does not exist.
func (r *ShopRepository) Update(ctx context.Context, id string, shop model.Shop) (*model.Shop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	update := bson.M{
		"$set": bson.M{
			"name":       shop.Name,
			"location":   shop.Location,
			"updated_at": time.Now(),
		},
	}

	var updated ShopDocument
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

	result := updated.toModel()
	return &result, nil
}

// Delete removes a shop by id.
func (r *ShopRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
