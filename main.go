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

	"vestuario/internal/handlers"
	"vestuario/internal/middleware"
	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/services"
	"vestuario/internal/watch"
	"vestuario/pkg/events"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "vestuario.db")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("EVENTS_URL", "")
	viper.SetDefault("SEED_DEMO", false)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Initialize Database (GORM) ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Player{}, &models.Match{}, &models.Training{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize Event Publisher (optional) ---
	// Services skip publication when no broker is configured.
	var mqClient *events.Client
	if url := viper.GetString("EVENTS_URL"); url != "" {
		mqClient, err = events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
	}
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	matchRepo := repositories.NewGORMMatchRepository(db)
	trainingRepo := repositories.NewGORMTrainingRepository(db)

	// --- Initialize Services ---
	hub := watch.NewHub()
	authService := services.NewAuthService(userRepo, playerRepo, matchRepo, trainingRepo, publisher, viper.GetString("JWT_SECRET"))
	playerService := services.NewPlayerService(playerRepo, hub, publisher)
	matchService := services.NewMatchService(matchRepo, hub, publisher)
	trainingService := services.NewTrainingService(trainingRepo, hub, publisher)
	statsService := services.NewStatsService(playerRepo, matchRepo, trainingRepo)

	// --- Seed demo data ---
	if viper.GetBool("SEED_DEMO") {
		seedDemo(authService, playerService, matchService, trainingService)
	}

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public authentication routes
	authHandler.RegisterRoutes(apiV1)

	// Everything else requires a session
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterAccountRoutes(protected)
	playerHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
	trainingHandler.RegisterRoutes(protected)
	statsHandler.RegisterRoutes(protected)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start Event Consumer (optional) ---
	// A deployment can attach side effects (mail, sync) to team events.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for team events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received team event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeTeamEvents(messageHandler); consumerErr != nil {
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

// openDatabase opens the configured store. SQLite is the default embedded
// store; Postgres is available for deployments that outgrow a single file.
// TranslateError turns driver duplicate-key failures into gorm.ErrDuplicatedKey
// so the unique email index surfaces as a domain error.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}

// seedDemo provisions the demo account with a small squad, a few results and
// a training block, so a fresh install has something to show.
func seedDemo(
	authService *services.AuthService,
	playerService *services.PlayerService,
	matchService *services.MatchService,
	trainingService *services.TrainingService,
) {
	const (
		demoName     = "User"
		demoEmail    = "user@gmail.com"
		demoPassword = "1234"
	)

	user, err := authService.Register(demoName, demoEmail, demoPassword)
	if err != nil {
		// Most likely already seeded on a previous start.
		log.Printf("Skipping demo seed: %v", err)
		return
	}

	players := []models.Player{
		{Name: "Thibaut Courtois", Position: models.PositionGoalkeeper, Age: 31, Number: 1, Rating: 89, Status: models.StatusStarter},
		{Name: "Dani Carvajal", Position: models.PositionDefender, Age: 32, Number: 2, Rating: 86, Status: models.StatusStarter},
		{Name: "Toni Kroos", Position: models.PositionMidfielder, Age: 34, Number: 8, Rating: 88, Status: models.StatusSubstitute},
		{Name: "Vinicius Junior", Position: models.PositionForward, Age: 23, Number: 7, Rating: 90, Status: models.StatusStarter},
	}
	for _, p := range players {
		if _, err := playerService.SavePlayer(user.ID, p); err != nil {
			log.Printf("Error seeding player %s: %v", p.Name, err)
		}
	}

	today := time.Now().Format("02/01/2006")
	matches := []models.Match{
		{Rival: "Atletico Norte", DateText: today, Competition: models.CompetitionLeague, GoalsFor: 2, GoalsAgainst: 1},
		{Rival: "Deportivo Sur", DateText: today, Competition: models.CompetitionCup, GoalsFor: 1, GoalsAgainst: 1},
		{Rival: "Racing Oeste", DateText: today, Competition: models.CompetitionFriendly, GoalsFor: 0, GoalsAgainst: 2},
	}
	for _, m := range matches {
		if _, err := matchService.SaveMatch(user.ID, m); err != nil {
			log.Printf("Error seeding match vs %s: %v", m.Rival, err)
		}
	}

	trainings := []models.Training{
		{Name: "Pretemporada fisica", DateText: today, DurationMin: 90, Type: models.TrainingStrength},
		{Name: "Circuito de velocidad", DateText: today, DurationMin: 60, Type: models.TrainingSpeed},
		{Name: "Tecnica de pase", DateText: today, DurationMin: 75, Type: models.TrainingTechnique},
	}
	for _, t := range trainings {
		if _, err := trainingService.SaveTraining(user.ID, t); err != nil {
			log.Printf("Error seeding training %s: %v", t.Name, err)
		}
	}

	log.Printf("Seeded demo account %s", demoEmail)
}
