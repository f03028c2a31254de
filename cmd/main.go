package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/blazingpizza/pizza-store/docs" // Import generated docs
	"github.com/blazingpizza/pizza-store/internal/config"
	"github.com/blazingpizza/pizza-store/internal/controllers"
	"github.com/blazingpizza/pizza-store/internal/database"
	"github.com/blazingpizza/pizza-store/internal/middleware"
	"github.com/blazingpizza/pizza-store/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                *gorm.DB
	orderService      services.OrderService
	catalogService    services.CatalogService
	orderController   controllers.OrderController
	catalogController controllers.CatalogController
	configuration     *config.Config
)

// @title Pizza Store API
// @version 1.0
// @description Order placement and retrieval for a pizza store
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection, schema and catalog seed data
	setupDatabase(configuration)

	// Initialize services and controllers
	orderService = services.NewOrderService(db)
	catalogService = services.NewCatalogService(db)
	orderController = controllers.NewOrderController(orderService)
	catalogController = controllers.NewCatalogController(catalogService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase opens the connection, migrates the schema and seeds the
// catalog tables when they are empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedCatalog(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Order routes
	orders := router.Group("/orders")
	{
		orders.GET("", orderController.GetAllOrders)
		orders.GET("/:orderId", orderController.GetOrderByID)
		orders.POST("", orderController.PlaceOrder)
	}

	// Catalog routes (read-only, public)
	router.GET("/specials", catalogController.GetSpecials)
	router.GET("/toppings", catalogController.GetToppings)

	// Catalog maintenance (requires a JWT with the admin role)
	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuth())
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/specials", catalogController.CreateSpecial)
		admin.POST("/toppings", catalogController.CreateTopping)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-store",
	})
}
