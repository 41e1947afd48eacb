package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/helpers"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
)

// ListReservations accepts an optional ?show=<id> filter. A filter that is
// not a valid id matches nothing.
func ListReservations(r *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var showID int64
		if raw, ok := c.GetQuery("show"); ok && raw != "" {
			id, valid := helpers.ParseID(raw)
			if !valid {
				c.JSON(http.StatusOK, []models.Reservation{})
				return
			}
			showID = id
		}
		list, err := r.ListReservations(c.Request.Context(), showID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetReservation(r *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		reservation, err := r.GetReservation(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

// CreateReservation returns 201 once the row is committed, regardless of
// whether the audit event could be written.
func CreateReservation(r *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.ReservationInput
		if !bindJSON(c, &in) {
			return
		}
		reservation, err := r.CreateReservation(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, reservation)
	}
}

func UpdateReservation(r *services.ReservationService, partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		var in models.ReservationInput
		if !bindJSON(c, &in) {
			return
		}
		reservation, err := r.UpdateReservation(c.Request.Context(), id, &in, partial)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

func DeleteReservation(r *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		if err := r.DeleteReservation(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListReservationEvents returns the audit trail for one reservation id. The
// reservation itself may no longer exist.
func ListReservationEvents(e *services.EventLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := relationalID(c)
		if !ok {
			return
		}
		events, err := e.ListEvents(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}
