// Package repository provides data access for shopping lists.
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

// ShoppingListItemDocument represents one list entry as stored in MongoDB.
// ProductID is empty when the user typed a free-form name with no explicit
// product reference.
type ShoppingListItemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Quantity  int                `bson:"quantity"`
	ProductID string             `bson:"product_id,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
}

// ShoppingListDocument represents a shopping list as stored in MongoDB.
type ShoppingListDocument struct {
	ID        primitive.ObjectID         `bson:"_id,omitempty"`
	Name      string                     `bson:"name"`
	OwnerID   string                     `bson:"owner_id,omitempty"`
	Items     []ShoppingListItemDocument `bson:"items"`
	CreatedAt time.Time                  `bson:"created_at"`
	UpdatedAt time.Time                  `bson:"updated_at"`
}

func (d ShoppingListDocument) toModel() model.ShoppingList {
	items := make([]model.ShoppingListItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, model.ShoppingListItem{
			ID:        item.ID.Hex(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
			Notes:     item.Notes,
		})
	}
	return model.ShoppingList{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		OwnerID: d.OwnerID,
		Items:   items,
	}
}

func toItemDocument(item model.ShoppingListItem) ShoppingListItemDocument {
	doc := ShoppingListItemDocument{
		Name:      item.Name,
		Quantity:  item.Quantity,
		ProductID: item.ProductID,
		Notes:     item.Notes,
	}
	if oid, err := primitive.ObjectIDFromHex(item.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

// ShoppingListRepository provides methods for shopping list operations.
type ShoppingListRepository struct {
	collection *mongo.Collection
}

// NewShoppingListRepository creates a new shopping list repository.
func NewShoppingListRepository(db *MongoDB) *ShoppingListRepository {
	return &ShoppingListRepository{
		collection: db.ShoppingLists,
	}
}

// Create inserts a new shopping list. Item ids are assigned server-side.
func (r *ShoppingListRepository) Create(ctx context.Context, list model.ShoppingList) (*model.ShoppingList, error) {
	items := make([]ShoppingListItemDocument, 0, len(list.Items))
	for _, item := range list.Items {
		doc := toItemDocument(item)
		doc.ID = primitive.NewObjectID()
		items = append(items, doc)
	}

	doc := ShoppingListDocument{
		ID:        primitive.NewObjectID(),
		Name:      list.Name,
		OwnerID:   list.OwnerID,
		Items:     items,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	created := doc.toModel()
	return &created, nil
}

// GetByID returns a shopping list by id, or nil if it does not exist.
func (r *ShoppingListRepository) GetByID(ctx context.Context, id string) (*model.ShoppingList, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc ShoppingListDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list := doc.toModel()
	return &list, nil
}

// ListByOwner returns all lists belonging to the given owner, newest first.
func (r *ShoppingListRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.ShoppingList, error) {
	query := bson.M{}
	if ownerID != "" {
		query["owner_id"] = ownerID
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ShoppingListDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	lists := make([]model.ShoppingList, 0, len(docs))
	for _, doc := range docs {
		lists = append(lists, doc.toModel())
	}
	return lists, nil
}

// Rename changes a list's display name, returning the updated list or nil
// if the list does not exist.
func (r *ShoppingListRepository) Rename(ctx context.Context, id, name string) (*model.ShoppingList, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var updated ShoppingListDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list := updated.toModel()
	return &list, nil
}

// Delete removes a shopping list by id.
func (r *ShoppingListRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// AddItem appends a new item to a list, returning the updated list or nil
// if the list does not exist.
func (r *ShoppingListRepository) AddItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	oid, err := primitive.ObjectIDFromHex(listID)
	if err != nil {
		return nil, nil
	}

	doc := toItemDocument(item)
	doc.ID = primitive.NewObjectID()

	var updated ShoppingListDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"items": doc},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list := updated.toModel()
	return &list, nil
}

// UpdateItem replaces an item in place, matched by item id. Returns nil if
// the list or item does not exist.
func (r *ShoppingListRepository) UpdateItem(ctx context.Context, listID string, item model.ShoppingListItem) (*model.ShoppingList, error) {
	listOID, err := primitive.ObjectIDFromHex(listID)
	if err != nil {
		return nil, nil
	}
	itemOID, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, nil
	}

	var updated ShoppingListDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": listOID, "items._id": itemOID},
		bson.M{
			"$set": bson.M{
				"items.$.name":       item.Name,
				"items.$.quantity":   item.Quantity,
				"items.$.product_id": item.ProductID,
				"items.$.notes":      item.Notes,
				"updated_at":         time.Now(),
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list := updated.toModel()
	return &list, nil
}

// RemoveItem deletes one item from a list by item id. Returns nil if the
// list does not exist.
func (r *ShoppingListRepository) RemoveItem(ctx context.Context, listID, itemID string) (*model.ShoppingList, error) {
	listOID, err := primitive.ObjectIDFromHex(listID)
	if err != nil {
		return nil, nil
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, nil
	}

	var updated ShoppingListDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": listOID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"_id": itemOID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list := updated.toModel()
	return &list, nil
}
