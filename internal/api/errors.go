package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"secondbrain/internal/entity"
)

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
	case errors.Is(err, entity.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
	case errors.Is(err, entity.ErrGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to process AI request"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}
