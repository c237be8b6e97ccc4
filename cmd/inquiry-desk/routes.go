package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/inquiry-desk/api/swagger"
	"github.com/noah-isme/inquiry-desk/internal/catalog"
	"github.com/noah-isme/inquiry-desk/internal/drafts"
	"github.com/noah-isme/inquiry-desk/internal/handler"
	"github.com/noah-isme/inquiry-desk/internal/middleware"
	"github.com/noah-isme/inquiry-desk/internal/service"
	"github.com/noah-isme/inquiry-desk/pkg/config"
	"github.com/noah-isme/inquiry-desk/pkg/export"
	"github.com/noah-isme/inquiry-desk/pkg/logger"
	corsmiddleware "github.com/noah-isme/inquiry-desk/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/inquiry-desk/pkg/middleware/requestid"
)

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.File)
}

// newRouter wires services and handlers over an already selected inquiry store.
func newRouter(cfg *config.Config, logr *zap.Logger, store service.InquiryStore, cat *catalog.Catalog) *gin.Engine {
	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		Password:     cfg.Auth.Password,
		PasswordHash: cfg.Auth.PasswordHash,
		Secret:       cfg.Auth.JWTSecret,
		SessionTTL:   cfg.Auth.SessionTTL,
	})
	inquirySvc := service.NewInquiryService(store, drafts.NewEngine(cat), metricsSvc, logr)
	exportSvc := service.NewExportService(inquirySvc, validate, logr, service.ExportConfig{Title: cfg.Export.Title},
		export.NewCSVExporter(), export.NewPDFExporter())

	dismissAfter := cfg.Notices.DismissAfter
	if dismissAfter <= 0 {
		dismissAfter = 3 * time.Second
	}

	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(inquirySvc)
	draftHandler := handler.NewDraftHandler(inquirySvc, dismissAfter)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc, exportSvc, dismissAfter)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, inquirySvc.Backend)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.POST("/auth/login", authHandler.Login)
	api.GET("/catalog", catalogHandler.Get)

	secured := api.Group("")
	secured.Use(middleware.JWT(authSvc))
	secured.POST("/auth/logout", authHandler.Logout)
	secured.POST("/drafts", draftHandler.Generate)
	secured.POST("/drafts/preview", draftHandler.Preview)

	inquiries := secured.Group("/inquiries")
	inquiries.GET("", inquiryHandler.List)
	inquiries.POST("", inquiryHandler.Create)
	inquiries.DELETE("", inquiryHandler.Clear)
	inquiries.GET("/breakdown", inquiryHandler.Breakdown)
	inquiries.GET("/emails", inquiryHandler.Emails)
	inquiries.GET("/export", inquiryHandler.Export)

	return r
}
