package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-tracker/modules/api"
	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/tasks"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Local development convenience; production config comes from the environment.
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment as-is")
		}
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule())  // Credential store + token service
	app.Register(tasks.NewModule()) // Task store + query composer
	app.Register(api.NewModule())   // HTTP surface, depends on auth and tasks

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Task tracker started successfully!")
	log.Println("")
	log.Println("  Public endpoints:")
	log.Println("  POST   /register    - Register a new user")
	log.Println("  POST   /login       - Login and get a bearer token")
	log.Println("  GET    /tasks       - List tasks (sort_by, order, top_n, search)")
	log.Println("  GET    /tasks/:id   - Get a task")
	log.Println("  GET    /health      - Health check")
	log.Println("")
	log.Println("  Protected endpoints (require Bearer token):")
	log.Println("  POST   /tasks       - Create a task")
	log.Println("  PUT    /tasks/:id   - Replace a task")
	log.Println("  DELETE /tasks/:id   - Delete a task")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
