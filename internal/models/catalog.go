package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MovieCatalogColName = "movie_catalog"

// CatalogDocument is a movie_catalog document as returned to clients: the
// store's _id is exposed as a string under "id".
type CatalogDocument map[string]interface{}

type CatalogEntryInput struct {
	MovieTitle  *string `json:"movie_title" validate:"required,min=1,max=120"`
	Genre       *string `json:"genre"`
	DurationMin *int    `json:"duration_min"`
	Rating      *string `json:"rating"`
	IsActive    *bool   `json:"is_active"`
}

func (in *CatalogEntryInput) present() []string {
	var out []string
	if in.MovieTitle != nil {
		out = append(out, "MovieTitle")
	}
	if in.Genre != nil {
		out = append(out, "Genre")
	}
	if in.DurationMin != nil {
		out = append(out, "DurationMin")
	}
	if in.Rating != nil {
		out = append(out, "Rating")
	}
	if in.IsActive != nil {
		out = append(out, "IsActive")
	}
	return out
}

// Validate checks the entry shape. A full (non-partial) entry without
// is_active gets is_active=true.
func (in *CatalogEntryInput) Validate(partial bool) error {
	trimPtr(in.MovieTitle)
	trimPtr(in.Genre)
	trimPtr(in.Rating)
	if err := validateInput(in, partial, in.present()); err != nil {
		return err
	}
	if !partial && in.IsActive == nil {
		active := true
		in.IsActive = &active
	}
	return nil
}

// Document returns the supplied fields as a BSON document, suitable both for
// insertion and as the body of a $set.
func (in *CatalogEntryInput) Document() bson.M {
	doc := bson.M{}
	if in.MovieTitle != nil {
		doc["movie_title"] = *in.MovieTitle
	}
	if in.Genre != nil {
		doc["genre"] = *in.Genre
	}
	if in.DurationMin != nil {
		doc["duration_min"] = *in.DurationMin
	}
	if in.Rating != nil {
		doc["rating"] = *in.Rating
	}
	if in.IsActive != nil {
		doc["is_active"] = *in.IsActive
	}
	return doc
}

// FixID moves the store identifier into "id" as a string and drops "_id".
func FixID(raw bson.M) CatalogDocument {
	doc := CatalogDocument(raw)
	if id, ok := raw["_id"]; ok {
		switch v := id.(type) {
		case primitive.ObjectID:
			doc["id"] = v.Hex()
		default:
			doc["id"] = fmt.Sprint(v)
		}
		delete(doc, "_id")
	}
	return doc
}
