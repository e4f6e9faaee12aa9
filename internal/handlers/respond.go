package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewdeck-dev/crewdeck/internal/service"
)

// respondError maps a service failure onto the wire envelope. Domain errors
// carry their own message; anything else is logged and reported with the
// operation's generic fallback.
func respondError(ctx *gin.Context, err error, fallback string) {
	var svcErr *service.Error

	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest

		if svcErr.Kind == service.KindNotFound {
			status = http.StatusNotFound
		}

		ctx.JSON(status, gin.H{"success": false, "error": svcErr.Message})
		return
	}

	log.Printf("%s: %v", fallback, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
}
