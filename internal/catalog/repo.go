package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repo struct{ C *mongo.Collection }

// ReplaceResult reports the outcome of an upsert-replace. UpsertedID is set
// only when no document matched and a new one was inserted.
type ReplaceResult struct {
	Matched    int64
	Modified   int64
	UpsertedID string
}

func (f Filter) document() bson.M {
	doc := bson.M{}
	if f.Category != "" {
		doc["category"] = f.Category
	}
	if f.Country != "" {
		doc["foodOrigin"] = f.Country
	}
	if f.MaxPrice != nil {
		doc["price"] = bson.M{"$lte": *f.MaxPrice}
	}
	return doc
}

func (r *Repo) List(ctx context.Context, q ListQuery) ([]Food, error) {
	opts := options.Find().
		SetSkip(q.Page * q.Size).
		SetLimit(q.Size)
	if q.SortField != "" && q.SortOrder != 0 {
		opts.SetSort(bson.D{{Key: q.SortField, Value: q.SortOrder}})
	}

	cur, err := r.C.Find(ctx, q.Filter.document(), opts)
	if err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	defer cur.Close(ctx)

	foods := []Food{}
	if err := cur.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	return foods, nil
}

// EstimatedCount is the whole-collection estimate, independent of any filter.
func (r *Repo) EstimatedCount(ctx context.Context) (int64, error) {
	return r.C.EstimatedDocumentCount(ctx)
}

// CountFiltered is the exact count under the given filter dimensions.
func (r *Repo) CountFiltered(ctx context.Context, f Filter) (int64, error) {
	return r.C.CountDocuments(ctx, f.document())
}

func (r *Repo) Get(ctx context.Context, id string) (Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Food{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	var food Food
	err = r.C.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Food{}, ErrNotFound
	}
	if err != nil {
		return Food{}, fmt.Errorf("find food %s: %w", id, err)
	}
	return food, nil
}

func (r *Repo) Create(ctx context.Context, f Food) (string, error) {
	f.ID = primitive.NilObjectID
	res, err := r.C.InsertOne(ctx, f)
	if err != nil {
		return "", fmt.Errorf("insert food: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert food: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Replace sets the full field set of the document at id, inserting it when
// absent. Callers relying on update-only semantics must check UpsertedID.
func (r *Repo) Replace(ctx context.Context, id string, f Food) (ReplaceResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ReplaceResult{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	update := bson.M{"$set": bson.M{
		"name":        f.Name,
		"category":    f.Category,
		"foodOrigin":  f.FoodOrigin,
		"price":       f.Price,
		"rating":      f.Rating,
		"image":       f.Image,
		"quantity":    f.Quantity,
		"tags":        f.Tags,
		"description": f.Description,
		"userEmail":   f.UserEmail,
		"madeBy":      f.MadeBy,
	}}
	res, err := r.C.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return ReplaceResult{}, fmt.Errorf("replace food %s: %w", id, err)
	}
	out := ReplaceResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = upserted.Hex()
	}
	return out, nil
}
