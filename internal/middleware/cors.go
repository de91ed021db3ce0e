package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the comma-separated origins in frontendURL, or localhost:3000 when empty.
// exposeHeaders are made readable by browser clients in addition to the defaults.
func CORSMiddleware(frontendURL string, exposeHeaders ...string) gin.HandlerFunc {
	var allowedOrigins []string

	if frontendURL == "" {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	} else {
		for _, origin := range strings.Split(frontendURL, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "PATCH", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    append([]string{"Content-Length", "Location"}, exposeHeaders...),
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
