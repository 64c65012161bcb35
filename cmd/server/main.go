package main

import (
	"log"
	"net/http"
	"time"

	"github.com/events-backend/app/internal/config"
	"github.com/events-backend/app/internal/database"
	"github.com/events-backend/app/internal/handlers"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.ConnectAndMigrate(cfg.DatabasePath, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	mux := handlers.NewRouter(db, sessionTTL)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true, // session cookies
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(mux)); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
