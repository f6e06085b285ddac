package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusdesk/complaint-api/api/swagger"
	"github.com/campusdesk/complaint-api/internal/classifier"
	"github.com/campusdesk/complaint-api/internal/handler"
	"github.com/campusdesk/complaint-api/internal/middleware"
	"github.com/campusdesk/complaint-api/internal/repository"
	"github.com/campusdesk/complaint-api/internal/service"
	"github.com/campusdesk/complaint-api/pkg/config"
	"github.com/campusdesk/complaint-api/pkg/database"
	appErrors "github.com/campusdesk/complaint-api/pkg/errors"
	"github.com/campusdesk/complaint-api/pkg/logger"
	corsmiddleware "github.com/campusdesk/complaint-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusdesk/complaint-api/pkg/middleware/requestid"
	"github.com/campusdesk/complaint-api/pkg/response"
)

// @title Campus Complaint Desk API
// @version 1.0.0
// @description Complaint intake, classification and support chatbot for a college community
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to prepare schema", "error", err)
	}

	gemini, err := classifier.NewGemini(ctx, cfg.Gemini, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init gemini client", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	gemini.SetObserver(metricsSvc)

	validate := validator.New()
	studentRepo := repository.NewStudentRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)

	authSvc := service.NewAuthService(studentRepo, cfg.Admin, validate, logr)
	complaintSvc := service.NewComplaintService(complaintRepo, gemini, validate, logr)
	chatSvc := service.NewChatService(gemini, validate, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	complaintHandler := handler.NewComplaintHandler(complaintSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, appErrors.ErrMethodNotAllowed)
	})

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/student/login", authHandler.StudentLogin)
	api.GET("/student/complaints/:student_id", complaintHandler.ListForStudent)
	api.POST("/classify-complaint", complaintHandler.Submit)
	api.POST("/chatbot", chatHandler.Respond)

	api.POST("/admin/login", authHandler.AdminLogin)
	api.GET("/admin/complaints", complaintHandler.ListAll)
	api.PUT("/admin/complaints/:id/resolve", complaintHandler.Resolve)
	if cfg.Exports.Enabled {
		api.GET("/admin/complaints/export", complaintHandler.Export)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "db", cfg.Database.Path)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
