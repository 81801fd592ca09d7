// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/Kontukunal/geodarshan-api/internal/auth"
	"github.com/Kontukunal/geodarshan-api/internal/catalog"
	"github.com/Kontukunal/geodarshan-api/internal/common/database"
	"github.com/Kontukunal/geodarshan-api/internal/config"
	"github.com/Kontukunal/geodarshan-api/internal/profile"
	"github.com/Kontukunal/geodarshan-api/internal/recommend"
	"github.com/Kontukunal/geodarshan-api/internal/selections"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting GeoDarshan Travel Discovery API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Printf("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL
	log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 5. Connect to Redis (optional)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var redisClient *redis.Client

	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without Redis", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 6. Run database migrations
	log.Println("\n🔨 Step 6: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Printf("❌ Migration error: %v", err)
		log.Fatal("Failed to run migrations")
	}
	log.Println("✅ Database migrations completed")

	// 7. Load the destination catalog
	log.Println("\n🗺️  Step 7: Loading destination catalog...")
	catalogRepo, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("❌ Failed to load destination catalog:", err)
	}
	if cfg.CatalogPath == "" {
		log.Printf("✅ Loaded %d destinations from embedded seed data", catalogRepo.Count())
	} else {
		log.Printf("✅ Loaded %d destinations from %s", catalogRepo.Count(), cfg.CatalogPath)
	}

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	// 8. Initialize Auth system
	log.Println("\n🔐 Step 8: Initializing authentication system...")

	authRepo := auth.NewPostgresRepository(db)

	authConfig := &auth.Config{
		JWTSecret:          cfg.JWTSecret,
		AccessTokenExpiry:  cfg.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.RefreshTokenExpiry,
		BCryptCost:         cfg.BCryptCost,
	}

	var loginLimiter auth.LoginLimiter
	if redisClient != nil {
		loginLimiter = auth.NewRedisLoginLimiter(redisClient, cfg.LoginAttemptsMax, cfg.LoginAttemptsWindow)
		log.Println("   ✅ Using Redis for login rate limiting")
	} else {
		loginLimiter = auth.NewMemoryLoginLimiter(cfg.LoginAttemptsMax, cfg.LoginAttemptsWindow)
		log.Println("   ⚠️  Using in-memory login rate limiting - Redis not available")
	}

	authService := auth.NewService(authRepo, loginLimiter, authConfig)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Start session cleanup job
	go startSessionCleanup(authService)

	log.Println("✅ Authentication system initialized")

	// 9. Initialize Profile system
	log.Println("\n👤 Step 9: Initializing preference profiles...")

	profileRepo := profile.NewPostgresRepository(db)
	profileCache := profile.NewCache(redisClient, cfg.PreferencesCacheTTL)
	if redisClient != nil {
		log.Println("   ✅ Preference caching enabled")
	} else {
		log.Println("   ⚠️  Preference caching disabled - Redis not available")
	}

	profileService := profile.NewService(profileRepo, profileCache)
	profileHandler := profile.NewHandler(profileService)

	log.Println("✅ Preference profiles initialized")

	// 10. Initialize Recommendation engine
	log.Println("\n✨ Step 10: Initializing recommendation engine...")

	engine := recommend.NewEngine(recommend.DefaultWeights())
	recommendService := recommend.NewService(catalogRepo, profileService, engine, cfg.TrendingLimit)
	recommendHandler := recommend.NewHandler(recommendService)

	log.Println("✅ Recommendation engine initialized")

	// 11. Initialize Selections (favorites + comparison)
	log.Println("\n⭐ Step 11: Initializing favorites and comparison...")

	selectionsRepo := selections.NewPostgresRepository(db)

	var compareStore selections.CompareStore
	if redisClient != nil {
		compareStore = selections.NewRedisCompareStore(redisClient, cfg.CompareSetTTL)
		log.Println("   ✅ Using Redis for comparison sets")
	} else {
		compareStore = selections.NewMemoryCompareStore()
		log.Println("   ⚠️  Using in-memory comparison sets - Redis not available")
	}

	selectionsService := selections.NewService(selectionsRepo, compareStore, catalogRepo)
	selectionsHandler := selections.NewHandler(selectionsService)

	log.Println("✅ Favorites and comparison initialized")

	// 12. Setup routes
	log.Println("\n🛣️  Step 12: Setting up routes...")
	router := mux.NewRouter()

	// Health check and metrics
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")

	auth.RegisterRoutes(router, authHandler, authMiddleware)
	log.Println("   ✅ Auth routes registered")

	catalog.RegisterRoutes(router, catalogHandler)
	log.Println("   ✅ Destination routes registered")

	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	log.Println("   ✅ Profile routes registered")

	recommend.RegisterRoutes(router, recommendHandler, authMiddleware)
	log.Println("   ✅ Recommendation routes registered")

	selections.RegisterRoutes(router, selectionsHandler, authMiddleware)
	log.Println("   ✅ Favorites and comparison routes registered")

	// Add middleware
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 13. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// Session cleanup job
func startSessionCleanup(authService auth.Service) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := authService.CleanupExpiredSessions(ctx); err != nil {
			log.Printf("Failed to cleanup expired sessions: %v", err)
		}
		cancel()
	}
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
		"name": "GeoDarshan Travel Discovery API",
		"version": "1.0.0",
		"status": "running",
		"endpoints": {
			"health": "GET /health",
			"metrics": "GET /metrics",
			"auth": {
				"register": "POST /api/auth/register",
				"login": "POST /api/auth/login",
				"refresh": "POST /api/auth/refresh",
				"logout": "POST /api/auth/logout"
			},
			"destinations": {
				"list": "GET /api/v1/destinations",
				"get": "GET /api/v1/destinations/{id}",
				"tags": "GET /api/v1/destinations/tags"
			},
			"recommendations": {
				"personalized": "GET /api/v1/recommendations (requires auth)",
				"trending": "GET /api/v1/trending?limit=N"
			},
			"profile": {
				"get": "GET /api/v1/profile/preferences (requires auth)",
				"save": "PUT /api/v1/profile/preferences (requires auth)",
				"reset": "DELETE /api/v1/profile/preferences (requires auth)"
			},
			"favorites": {
				"list": "GET /api/v1/favorites (requires auth)",
				"toggle": "POST /api/v1/favorites/{id} (requires auth)"
			},
			"compare": {
				"list": "GET /api/v1/compare (requires auth)",
				"toggle": "POST /api/v1/compare/{id} (requires auth)",
				"clear": "DELETE /api/v1/compare (requires auth)"
			},
			"protected": {
				"me": "GET /api/v1/me (requires auth)"
			}
		}
	}`))
}

// Middleware functions

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations executes database migrations
func runMigrations(db *sqlx.DB) error {
	log.Println("   - Creating/updating tables...")

	migrations := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			username VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// Sessions table
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			refresh_token TEXT NOT NULL UNIQUE,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// Preference profiles, one JSONB document per user
		`CREATE TABLE IF NOT EXISTS user_preferences (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			preferences JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// Favorites
		`CREATE TABLE IF NOT EXISTS user_favorites (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			destination_id BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, destination_id)
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_refresh_token ON sessions(refresh_token)`,
		`CREATE INDEX IF NOT EXISTS idx_user_favorites_user_id ON user_favorites(user_id)`,
	}

	for i, migration := range migrations {
		log.Printf("   - Running migration %d/%d...", i+1, len(migrations))
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("   ✅ All migrations executed successfully")
	return nil
}
