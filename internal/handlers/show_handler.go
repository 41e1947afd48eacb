package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
)

func ListShows(s *services.ShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		shows, err := s.ListShows(c.Request.Context(), c.Query("search"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, shows)
	}
}

func GetShow(s *services.ShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		show, err := s.GetShow(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, show)
	}
}

func CreateShow(s *services.ShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.ShowInput
		if !bindJSON(c, &in) {
			return
		}
		show, err := s.CreateShow(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, show)
	}
}

// UpdateShow serves PUT and PATCH; partial selects PATCH semantics.
func UpdateShow(s *services.ShowService, partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		var in models.ShowInput
		if !bindJSON(c, &in) {
			return
		}
		show, err := s.UpdateShow(c.Request.Context(), id, &in, partial)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, show)
	}
}

func DeleteShow(s *services.ShowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		if err := s.DeleteShow(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
