package routes

import (
	"copro-backend/internal/api/handlers"
	"copro-backend/internal/api/middleware"
	"copro-backend/internal/auth"
	"copro-backend/internal/config"
	"copro-backend/internal/database/models"
	"copro-backend/internal/repository"
	"copro-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// It fails when the token signing configuration is invalid.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	// handlers pass *gin.Context as the service context; deadlines come from the request
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	identityRepo := repository.NewIdentityRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, err
	}
	hasher := auth.NewPasswordHasher(auth.PasswordCost)

	// Initialize services
	resolver := service.NewIdentityResolver(identityRepo, authService)
	userService := service.NewUserService(identityRepo, resolver, hasher, validator)
	buildingService := service.NewBuildingService(buildingRepo, identityRepo, validator)
	ledger := service.NewOwnershipLedger(ownershipRepo, identityRepo, validator)
	unitService := service.NewUnitService(unitRepo, buildingRepo, ledger, validator)

	authMiddleware := auth.NewAuthMiddleware(resolver)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	buildingHandler := handlers.NewBuildingHandler(buildingService)
	unitHandler := handlers.NewUnitHandler(unitService, ledger)
	ownershipHandler := handlers.NewOwnershipHandler(ledger)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.QueryTimeout(cfg.DBQueryTimeout))

	// Public auth routes
	public := v1.Group("/auth")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}

	// Everything else requires a valid token resolved to an active identity
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())

	managers := authMiddleware.RequirePartition(models.PartitionSyndic, models.PartitionAdministrator)
	adminsOnly := authMiddleware.RequirePartition(models.PartitionAdministrator)

	{
		authRoutes := protected.Group("/auth")
		{
			authRoutes.GET("/me", authHandler.Me)
			authRoutes.GET("/users", adminsOnly, authHandler.ListUsers)
			authRoutes.PATCH("/users/toggle", adminsOnly, authHandler.ToggleUser)
		}

		buildings := protected.Group("/buildings")
		{
			buildings.GET("", buildingHandler.ListBuildings)
			buildings.POST("", managers, buildingHandler.CreateBuilding)
			buildings.GET("/:id", buildingHandler.GetBuilding)
		}

		units := protected.Group("/units")
		{
			units.GET("", unitHandler.ListUnits)
			units.POST("", managers, unitHandler.CreateUnit)
			units.GET("/:id", unitHandler.GetUnit)
			units.PUT("/:id", managers, unitHandler.UpdateUnit)
			units.GET("/:id/owners", unitHandler.CurrentOwners)
		}

		owners := protected.Group("/owners")
		{
			owners.GET("", ownershipHandler.ListCurrentOwners)
			owners.GET("/building/:buildingId", ownershipHandler.BuildingOwners)
			owners.POST("/ownership", managers, ownershipHandler.CreateOwnership)
			owners.GET("/ownership/:id", ownershipHandler.GetOwnership)
			owners.PUT("/ownership/:id", managers, ownershipHandler.UpdateOwnership)
			owners.POST("/ownership/:id/close", managers, ownershipHandler.CloseOwnership)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
