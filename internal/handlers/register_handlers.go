package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/splitgem/payment-manager/cmd/docs"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
	"github.com/splitgem/payment-manager/internal/middleware"
	"github.com/splitgem/payment-manager/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerExternalPaymentRoutes(r, services)
	registerInternalPaymentRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerExternalPaymentRoutes configures the gateway-facing routes. Every
// route in this group requires the caller identity header the API gateway
// injects after authenticating the user.
func registerExternalPaymentRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	handler := newPaymentHandler(services.Payment)

	external := r.Group("/external/payments", middleware.RequireUserID())
	external.POST("", handler.createPayment)
	external.POST("/decide", handler.decide)
	external.GET("/:paymentId/groups/:groupId", handler.getPayment)
	external.PUT("/:paymentId/groups/:groupId", handler.updatePayment)
	external.DELETE("/:paymentId/groups/:groupId", handler.deletePayment)
}

// registerInternalPaymentRoutes configures the service-to-service routes.
// These are reachable only inside the deployment network and carry no caller
// identity.
func registerInternalPaymentRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	handler := newInternalPaymentHandler(services.Payment, services.Balance)

	internal := r.Group("/internal/payments")
	internal.GET("/activities/groups/:groupId", handler.getGroupActivities)
	internal.GET("/accepted/groups/:groupId", handler.getAcceptedGroupPayments)
	internal.GET("/balance/groups/:groupId/users/:userId", handler.getUserBalance)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
