package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/config"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/store"
)

func main() {
	log.Println("✅ Starting storefront API...")

	cfg := config.Load()

	// Storage backend: nil keeps cart/session in browser cookies
	backend := initStorage(cfg)

	provider := store.NewProvider(backend, []byte(cfg.JWTSecret))
	client := catalog.NewClient(cfg.CatalogURL)

	// Gin setup
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Server-side backends need a per-client scope cookie; it must be set
	// before the session loads.
	if backend != nil {
		r.Use(middleware.ClientScope())
	}
	r.Use(middleware.LoadSession(provider))

	// Setup routes
	routes.SetupRoutes(r, provider, client)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage selects the KV backend. The default is nil, which means all
// state stays in the browser's cookies and the server holds nothing.
func initStorage(cfg *config.Config) store.KV {
	switch cfg.StorageBackend {
	case "", "cookie":
		return nil
	case "memory":
		log.Println("✅ Using in-memory storage backend")
		return store.NewMemoryKV()
	case "file":
		log.Printf("✅ Using file storage backend: %s", cfg.StorageFile)
		return store.OpenFileKV(cfg.StorageFile)
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		kv, err := store.NewGormKV(db)
		if err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
		log.Println("✅ Using postgres storage backend")
		return kv
	default:
		log.Fatalf("❌ Unknown STORAGE_BACKEND: %s", cfg.StorageBackend)
		return nil
	}
}
