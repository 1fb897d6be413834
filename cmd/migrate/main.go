package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"bookcatalog/internal/platform/logger"
	"bookcatalog/internal/platform/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	log := logger.Setup(os.Stderr, os.Getenv("LOG_LEVEL"), "text")

	if *command == "create" {
		if err := postgres.CreateMigration(migrationsDir(), *name); err != nil {
			log.Error("cannot create migration", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Migration created: %s\n", *name)
		return
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, databaseDSN(), 5*time.Second)
	if err != nil {
		log.Error("cannot connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, *command, log); err != nil {
		log.Error("migration failed", "command", *command, "error", err)
		pool.Close()
		os.Exit(1)
	}
	if *command != "status" {
		fmt.Printf("Migrations %s applied successfully\n", *command)
	}
}
