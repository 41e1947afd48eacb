package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
)

func ListCatalog(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := cs.ListCatalog(c.Request.Context(), c.Request.URL.Query())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func GetCatalogEntry(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := cs.GetCatalogEntry(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func CreateCatalogEntry(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.CatalogEntryInput
		if !bindJSON(c, &in) {
			return
		}
		doc, err := cs.CreateCatalogEntry(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, doc)
	}
}

// UpdateCatalogEntry checks the id before the body so a malformed id is
// always reported as such.
func UpdateCatalogEntry(cs *services.CatalogService, partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.Param("id")
		if _, err := services.ParseCatalogID(rawID); err != nil {
			respondError(c, err)
			return
		}
		var in models.CatalogEntryInput
		if !bindJSON(c, &in) {
			return
		}
		doc, err := cs.UpdateCatalogEntry(c.Request.Context(), rawID, &in, partial)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func DeleteCatalogEntry(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteCatalogEntry(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
