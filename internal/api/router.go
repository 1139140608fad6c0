// Package api exposes the core over the JSON REST surface the web client
// consumes.
package api

import (
	"github.com/gin-gonic/gin"

	"secondbrain/pkg/logger/slogx"
)

type Handler interface {
	RegisterRoutes(r gin.IRouter)
}

func NewRouter(handlers ...Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), slogx.Middleware())

	for _, h := range handlers {
		h.RegisterRoutes(r)
	}

	return r
}
