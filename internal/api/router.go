package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"go-event-form/internal/api/handler"
	"go-event-form/internal/metrics"
	"go-event-form/pkg/router"

	_ "go-event-form/docs"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/", h.Index)
	r.GET("/fragments/cities", h.Cities)
	r.POST("/period", h.Period)
	r.POST("/query", h.Query)
	r.POST(handler.ExportRoute, h.Export)
	r.GET(handler.DownloadRoute, h.Download)

	r.GET("/api/health", h.Health)
	r.Handle(http.MethodGet, "/metrics", metrics.Handler())
	r.Handle(http.MethodGet, "/swagger/*", httpSwagger.WrapHandler)

	r.OnRequest = metrics.ObserveRequest
}
