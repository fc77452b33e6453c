// Package repository provides data access for the material catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
)

// MaterialRepository provides methods for material catalog operations.
type MaterialRepository struct {
	collection *mongo.Collection
}

// NewMaterialRepository creates a new material repository.
func NewMaterialRepository(db *MongoDB) *MaterialRepository {
	return &MaterialRepository{
		collection: db.Materials,
	}
}

// GetByID returns the material with the given business identifier.
// Returns (nil, nil) when no such material exists.
func (r *MaterialRepository) GetByID(ctx context.Context, materialID string) (*model.Material, error) {
	var material model.Material
	err := r.collection.FindOne(ctx, bson.M{"material_id": materialID, "active": true}).Decode(&material)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// Create inserts a new material document.
func (r *MaterialRepository) Create(ctx context.Context, material model.Material) (*model.Material, error) {
	material.ID = primitive.NewObjectID()
	material.Active = true
	material.CreatedAt = time.Now()
	material.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, material); err != nil {
		return nil, err
	}
	return &material, nil
}

// Update replaces the mutable fields of an existing material.
// Returns (nil, nil) when the material does not exist.
func (r *MaterialRepository) Update(ctx context.Context, materialID string, material model.Material) (*model.Material, error) {
	update := bson.M{
		"$set": bson.M{
			"material_name":       material.MaterialName,
			"material_code":       material.MaterialCode,
			"master_width_mm":     material.MasterWidthMM,
			"gsm":                 material.GSM,
			"price_per_tonne_aud": material.PricePerTonneAUD,
			"total_linear_meters": material.TotalLinearMeters,
			"updated_at":          time.Now(),
		},
	}

	var updated model.Material
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"material_id": materialID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// List returns active materials, newest first.
func (r *MaterialRepository) List(ctx context.Context, limit int) ([]model.Material, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var materials []model.Material
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, err
	}

	return materials, nil
}
