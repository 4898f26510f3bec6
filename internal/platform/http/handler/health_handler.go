// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Home handles GET /, a public liveness endpoint with a human-readable body.
func Home(c *gin.Context) {
	c.JSON(200, gin.H{"message": "ControlaStock API está funcionando!"})
}

// Health handles the /health endpoint for service health checks.
// It responds to all GET/HEAD/OPTIONS requests and prevents caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
