package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"secondbrain/internal/entity"
)

type graphUsecase interface {
	Graph(ctx context.Context) (entity.Graph, error)
}

type GraphHandler struct {
	graph graphUsecase
}

func NewGraphHandler(graph graphUsecase) *GraphHandler {
	return &GraphHandler{graph: graph}
}

func (h *GraphHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/graph", h.get)
}

func (h *GraphHandler) get(c *gin.Context) {
	g, err := h.graph.Graph(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}
