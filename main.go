package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"starlitsips/internal/handlers"
	"starlitsips/internal/middleware"
	"starlitsips/internal/models"
	"starlitsips/internal/repositories"
	"starlitsips/internal/services"
	"starlitsips/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Viper reads configuration from environment variables with these defaults.
	// The admin credential and the universal discount code are configuration,
	// not literals in the business logic.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "memory")
	viper.SetDefault("DB_DSN", "starlitsips.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "starlit_dev_secret")
	viper.SetDefault("ADMIN_PASSWORD", "admin2024")
	viper.SetDefault("UNIVERSAL_DISCOUNT_CODE", "50OFF")
	viper.SetDefault("UNIVERSAL_DISCOUNT_PERCENT", 50)
	viper.SetDefault("PREP_TIME_MINUTES", 5)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	prepTime := time.Duration(viper.GetInt("PREP_TIME_MINUTES")) * time.Minute

	// --- Initialize RabbitMQ Client (optional) ---
	// The shop works standalone; messaging only turns on when a broker URL is
	// configured, and the order service treats a nil client as "skip publish".
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: failed to initialize RabbitMQ client, continuing without messaging: %v", err)
		} else {
			mqClient = client
			defer mqClient.Close() // Ensure the connection is closed on exit
		}
	}

	// --- Initialize Repositories ---
	// Orders, customers and feedback are session-scoped by design and always
	// live in memory. The catalog and discount codes can optionally be backed
	// by a database (DB_DRIVER=sqlite|postgres).
	menuRepo, discountRepo := buildCatalogRepositories()
	orderRepo := repositories.NewInMemoryOrderRepository()
	customerRepo := repositories.NewInMemoryCustomerRepository()
	feedbackRepo := repositories.NewInMemoryFeedbackRepository()

	seedCatalog(menuRepo)
	seedUniversalDiscount(discountRepo)

	// --- Initialize Services ---
	authService, err := services.NewAuthService(
		viper.GetString("ADMIN_PASSWORD"),
		viper.GetString("JWT_SECRET"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, customerRepo, mqClient, prepTime)
	reportService := services.NewReportService(orderRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	discountService := services.NewDiscountService(discountRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	aboutHandler := handlers.NewAboutHandler()
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(reportService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	discountHandler := handlers.NewDiscountHandler(discountService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public routes: browsing, ordering, feedback, discount redemption
	authHandler.RegisterRoutes(apiV1)
	aboutHandler.RegisterRoutes(apiV1)
	menuHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)
	reportHandler.RegisterRoutes(apiV1)
	feedbackHandler.RegisterRoutes(apiV1)
	discountHandler.RegisterRoutes(apiV1)

	// Admin routes: inventory edits, discount creation, feedback review
	adminRoutes := apiV1.Group("/admin", middleware.AdminRequired(authService))
	menuHandler.RegisterAdminRoutes(adminRoutes)
	feedbackHandler.RegisterAdminRoutes(adminRoutes)
	discountHandler.RegisterAdminRoutes(adminRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for order events, standing in for a kitchen display.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Order Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// buildCatalogRepositories selects the storage backend for the catalog and
// the discount codes based on DB_DRIVER. "memory" is the default; sqlite and
// postgres give the discount mapping real durability across restarts.
func buildCatalogRepositories() (repositories.MenuRepository, repositories.DiscountRepository) {
	driver := viper.GetString("DB_DRIVER")
	dsn := viper.GetString("DB_DSN")

	var dialector gorm.Dialector
	switch driver {
	case "memory":
		return repositories.NewInMemoryMenuRepository(), repositories.NewInMemoryDiscountRepository()
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		log.Fatalf("Unknown DB_DRIVER %q (want memory, sqlite or postgres)", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to %s database: %v", driver, err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}, &models.DiscountCode{}); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}
	log.Printf("Using %s storage for catalog and discount codes", driver)

	return repositories.NewGORMMenuRepository(db), repositories.NewGORMDiscountRepository(db)
}

// seedCatalog populates the catalog with the house menu if it is empty.
func seedCatalog(repo repositories.MenuRepository) {
	existing, err := repo.GetAll()
	if err != nil {
		log.Printf("Error reading catalog before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	items := []models.MenuItem{
		{Name: "Signature Coffee", Price: 10.00, Stock: 50,
			ImageURL:    "https://www.shutterstock.com/image-photo/coffee-mug-grinded-beans-concept-600nw-2500190129.jpg",
			Ingredients: map[string]float64{"coffee_beans": 0.1, "milk": 0.05}},
		{Name: "Americano", Price: 5.00, Stock: 100,
			ImageURL:    "https://www.oddbeans.in/cdn/shop/articles/image1_9a1a2488-7d3e-49e6-ae4a-babcc1c17218.jpg",
			Ingredients: map[string]float64{"coffee_beans": 0.1, "milk": 0.05}},
		{Name: "Cappuccino", Price: 6.00, Stock: 50,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/c/c8/Cappuccino_at_Sightglass_Coffee.jpg",
			Ingredients: map[string]float64{"coffee_beans": 0.1, "milk": 0.1}},
		{Name: "Latte", Price: 6.50, Stock: 75,
			ImageURL:    "https://media.istockphoto.com/id/1152767411/photo/cup-of-coffee-latte.jpg",
			Ingredients: map[string]float64{"coffee_beans": 0.1, "milk": 0.2}},
		{Name: "Caramel Macchiato", Price: 7.00, Stock: 30,
			ImageURL:    "https://cooktoria.com/wp-content/uploads/2016/02/Caramel-Macchiato-Recipe-sq-1.jpg",
			Ingredients: map[string]float64{"coffee_beans": 0.1, "milk": 0.1, "syrup": 0.05}},
		{Name: "Espresso", Price: 5.00, Stock: 30,
			ImageURL:    "https://pizza-boy.co.uk/wp-content/uploads/2024/01/expresso-324x243.jpg",
			Ingredients: map[string]float64{"coffee_beans": 0.1, "milk": 0.1, "syrup": 0.05}},
	}

	for i := range items {
		if err := repo.Create(&items[i]); err != nil {
			log.Printf("Error seeding menu item %s: %v", items[i].Name, err)
		} else {
			log.Printf("Seeded menu item: %s ($%.2f, %d cups)", items[i].Name, items[i].Price, items[i].Stock)
		}
	}
}

// seedUniversalDiscount installs the configured shop-wide redemption code so
// it resolves through the same lookup path as admin-created codes.
func seedUniversalDiscount(repo repositories.DiscountRepository) {
	code := viper.GetString("UNIVERSAL_DISCOUNT_CODE")
	percent := viper.GetInt("UNIVERSAL_DISCOUNT_PERCENT")
	if code == "" {
		return
	}

	service := services.NewDiscountService(repo)
	if _, err := service.CreateCode(code, percent); err != nil {
		log.Printf("Error seeding universal discount code %s: %v", code, err)
	} else {
		log.Printf("Seeded universal discount code: %s (%d%%)", code, percent)
	}
}
