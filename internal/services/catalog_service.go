package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/joshua-takyi/cinema/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService struct {
	catalogRepo models.CatalogRepo
}

func NewCatalogService(catalogRepo models.CatalogRepo) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ParseCatalogID rejects malformed identifiers before any lookup so callers
// can tell "bad id" apart from "not found".
func ParseCatalogID(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// CatalogFilter turns query parameters into a document filter as-is: one
// value means equality, a repeated key means $in. Values stay strings.
func CatalogFilter(query url.Values) bson.M {
	filter := bson.M{}
	for key, values := range query {
		switch len(values) {
		case 0:
			continue
		case 1:
			filter[key] = values[0]
		default:
			filter[key] = bson.M{"$in": values}
		}
	}
	return filter
}

func (cs *CatalogService) ListCatalog(ctx context.Context, query url.Values) ([]models.CatalogDocument, error) {
	raw, err := cs.catalogRepo.ListCatalog(ctx, CatalogFilter(query))
	if err != nil {
		return nil, err
	}
	docs := make([]models.CatalogDocument, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, models.FixID(d))
	}
	return docs, nil
}

func (cs *CatalogService) GetCatalogEntry(ctx context.Context, rawID string) (models.CatalogDocument, error) {
	oid, err := ParseCatalogID(rawID)
	if err != nil {
		return nil, err
	}
	return cs.fetch(ctx, oid)
}

func (cs *CatalogService) CreateCatalogEntry(ctx context.Context, in *models.CatalogEntryInput) (models.CatalogDocument, error) {
	if err := in.Validate(false); err != nil {
		return nil, err
	}
	oid, err := cs.catalogRepo.CreateCatalog(ctx, in.Document())
	if err != nil {
		return nil, err
	}
	return cs.fetch(ctx, oid)
}

// UpdateCatalogEntry applies a field-level $set. PUT (partial=false) needs
// the full shape; PATCH validates only the fields present.
func (cs *CatalogService) UpdateCatalogEntry(ctx context.Context, rawID string, in *models.CatalogEntryInput, partial bool) (models.CatalogDocument, error) {
	oid, err := ParseCatalogID(rawID)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(partial); err != nil {
		return nil, err
	}
	if err := cs.catalogRepo.UpdateCatalog(ctx, oid, in.Document()); err != nil {
		return nil, err
	}
	return cs.fetch(ctx, oid)
}

func (cs *CatalogService) DeleteCatalogEntry(ctx context.Context, rawID string) error {
	oid, err := ParseCatalogID(rawID)
	if err != nil {
		return err
	}
	deleted, err := cs.catalogRepo.DeleteCatalog(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (cs *CatalogService) fetch(ctx context.Context, oid primitive.ObjectID) (models.CatalogDocument, error) {
	doc, err := cs.catalogRepo.GetCatalogByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return models.FixID(doc), nil
}
