package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepo interface {
	ListCatalog(ctx context.Context, filter bson.M) ([]bson.M, error)
	GetCatalogByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	CreateCatalog(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	UpdateCatalog(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteCatalog(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (mdb *MongodbRepo) ListCatalog(ctx context.Context, filter bson.M) ([]bson.M, error) {
	col, err := mdb.GetCollection(MovieCatalogColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding catalog entries: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding catalog entry: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return docs, nil
}

// GetCatalogByID returns nil, nil when no document matches.
func (mdb *MongodbRepo) GetCatalogByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	col, err := mdb.GetCollection(MovieCatalogColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var doc bson.M
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding catalog entry %s: %w", id.Hex(), err)
	}
	return doc, nil
}

func (mdb *MongodbRepo) CreateCatalog(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(MovieCatalogColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting catalog entry: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (mdb *MongodbRepo) UpdateCatalog(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if len(set) == 0 {
		return nil
	}
	col, err := mdb.GetCollection(MovieCatalogColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	if _, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("error updating catalog entry %s: %w", id.Hex(), err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteCatalog(ctx context.Context, id primitive.ObjectID) (bool, error) {
	col, err := mdb.GetCollection(MovieCatalogColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting catalog entry %s: %w", id.Hex(), err)
	}
	return res.DeletedCount > 0, nil
}
