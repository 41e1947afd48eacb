package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck pings one backing store. Only a failing Critical check turns
// the response into a 503; the rest mark the service DEGRADED.
type HealthCheck struct {
	Ping     func(ctx context.Context) error
	Critical bool
}

type healthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

func Health(checks map[string]HealthCheck) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "OK", Service: "cinema-api", Checks: map[string]string{}}
		code := http.StatusOK
		for _, name := range names {
			check := checks[name]
			if err := check.Ping(ctx); err != nil {
				resp.Checks[name] = "unavailable"
				resp.Status = "DEGRADED"
				if check.Critical {
					code = http.StatusServiceUnavailable
				}
				continue
			}
			resp.Checks[name] = "ok"
		}
		c.JSON(code, resp)
	}
}
