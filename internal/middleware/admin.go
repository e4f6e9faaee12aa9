package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/guard"
)

// RequireAdmin aborts with 403 before any store access when the configured
// guard denies the request credential.
func RequireAdmin(g guard.Guard) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		credential := ctx.GetHeader(g.CredentialHeader())

		if err := g.Authorize(credential); err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied. Admin only.",
			})
			return
		}

		ctx.Next()
	}
}
