package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/config"
	"github.com/crewdeck-dev/crewdeck/internal/guard"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/router"
	"github.com/crewdeck-dev/crewdeck/internal/service"
	"github.com/crewdeck-dev/crewdeck/internal/storage"
	"github.com/crewdeck-dev/crewdeck/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.ConnectDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	defer func() {
		if err := db.DisconnectDatabase(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	memberStore := store.NewMongoMemberStore(db.Members())
	projectStore := store.NewMongoProjectStore(db.Projects())

	memberService := service.NewMemberService(memberStore)
	projectService := service.NewProjectService(projectStore, memberStore)

	var g guard.Guard = guard.HeaderGuard{}

	if cfg.AuthMode == config.AuthModeToken {
		g = guard.NewTokenGuard(cfg.JWTSecret)
	}

	var objectStorage *storage.ObjectStorage

	if cfg.S3Enabled() {
		objectStorage = storage.NewObjectStorage(cfg)
	} else {
		log.Println("Avatar storage not configured, uploads disabled")
	}

	r := router.NewRouter(
		g,
		handlers.NewMemberHandler(memberService, objectStorage),
		handlers.NewProjectHandler(projectService),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
