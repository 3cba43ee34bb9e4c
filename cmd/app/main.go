package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cdirks4/insta-gift/internal/account"
	"github.com/cdirks4/insta-gift/internal/config"
	"github.com/cdirks4/insta-gift/internal/gift"
	"github.com/cdirks4/insta-gift/internal/history"
	"github.com/cdirks4/insta-gift/internal/inference"
	"github.com/cdirks4/insta-gift/internal/profile"
	"github.com/cdirks4/insta-gift/internal/scraper"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})
	setupCORS(app)
	app.Use(requestLogger)

	// repositories fall back to in-memory storage when DATABASE_URL is unset
	// so the analysis endpoints work without any database at all
	var accountRepo account.Repository = account.NewInMemoryRepository(nil)
	var historyRepo history.Repository = history.NewInMemoryRepository()
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		db := mustOpenDB(dbURL)
		defer db.Close()
		ensureSchema(db)
		accountRepo = account.NewPostgresRepository(db)
		historyRepo = history.NewPostgresRepository(db)
	} else {
		log.Printf("DATABASE_URL not set, using in-memory storage")
	}

	llm := inference.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	historyService := history.NewService(historyRepo)

	accountHandler := account.NewHandler(account.NewService(accountRepo))
	accountHandler.RegisterPublicRoutes(app)

	giftHandler := gift.NewHandler(gift.NewService(llm), historyService)
	giftHandler.RegisterPublicRoutes(app)

	profileHandler := profile.NewHandler(
		profile.NewService(scraper.NewRodScraper(cfg.BrowserBin), llm),
		historyService,
	)
	profileHandler.RegisterPublicRoutes(app)

	// everything registered below requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	}))

	historyHandler := history.NewHandler(historyService)
	historyHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	reqID := uuid.NewString()
	err := c.Next()
	log.Printf("request %s %s %s -> %d (%s)", reqID, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS accounts (
		account_id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		created_at TEXT,
		updated_at TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id SERIAL PRIMARY KEY,
		account_id INT NOT NULL,
		kind TEXT NOT NULL,
		username TEXT,
		age INT NOT NULL DEFAULT 0,
		budget NUMERIC NOT NULL DEFAULT 0,
		interests TEXT[],
		analysis TEXT,
		gifts JSONB,
		created_at TEXT
	)`); err != nil {
		panic(err)
	}
}
