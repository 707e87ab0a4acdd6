package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServerModeHeader names the response header announcing maintenance mode.
const ServerModeHeader = "X-Server-Mode"

const maintenanceModeValue = "Maintenance Mode"

// MaintenancePayload is the fixed body served while maintenance is on.
var MaintenancePayload = gin.H{"detail": "Server is under maintenance."}

// Maintenance short-circuits every non-documentation route with a fixed
// unavailability payload while the flag is set.
func Maintenance(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled || isDocsPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		c.Header(ServerModeHeader, maintenanceModeValue)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, MaintenancePayload)
	}
}

func isDocsPath(path string) bool {
	return path == "/" || path == "/docs" || strings.HasPrefix(path, "/docs/")
}
