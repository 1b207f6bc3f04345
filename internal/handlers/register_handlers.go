package handlers

import (
	"net/http"

	"github.com/SscSPs/money_chat/cmd/docs"
	portssvc "github.com/SscSPs/money_chat/internal/core/ports/services"
	"github.com/SscSPs/money_chat/internal/dto"
	"github.com/SscSPs/money_chat/internal/middleware"
	"github.com/SscSPs/money_chat/internal/platform/config"
	"github.com/SscSPs/money_chat/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries the optional middleware dependencies of the API.
type RouteOptions struct {
	// ChatLimiter rate limits POST /chat/messages. Nil disables limiting.
	ChatLimiter *limiter.Limiter
	// Posthog tracks successful API calls. Nil disables tracking.
	Posthog *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, opts)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if opts.Posthog != nil {
		v1.Use(middleware.PosthogMiddleware(opts.Posthog))
	}

	var chatMiddleware []gin.HandlerFunc
	if opts.ChatLimiter != nil {
		chatMiddleware = append(chatMiddleware, middleware.RateLimit(opts.ChatLimiter))
	}

	registerChatRoutes(v1, service.Chat, chatMiddleware...)
	registerPatternRoutes(v1, service.Pattern)
	registerTransactionRoutes(v1, service.Transaction)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
