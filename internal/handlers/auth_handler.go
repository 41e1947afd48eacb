package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/joshua-takyi/cinema/internal/services"
)

// Login exchanges a username and password for a bearer token.
func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.LoginInput
		if !bindJSON(c, &in) {
			return
		}
		result, err := u.Login(c.Request.Context(), &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
