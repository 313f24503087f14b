package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/najamfazal/leadtrack-solo/internal/infra/cache"
	"github.com/najamfazal/leadtrack-solo/internal/infra/database"
	"github.com/najamfazal/leadtrack-solo/internal/infra/http/handlers"
	"github.com/najamfazal/leadtrack-solo/internal/infra/http/middleware"
	"github.com/najamfazal/leadtrack-solo/internal/infra/integration/gemini"
	"github.com/najamfazal/leadtrack-solo/internal/infra/mail"
	"github.com/najamfazal/leadtrack-solo/internal/infra/queue"
	"github.com/najamfazal/leadtrack-solo/internal/infra/worker"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer rdb.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	interactionRepo := database.NewInteractionRepository(db)
	taskRepo := database.NewTaskRepository(db)
	settingsRepo := cache.NewCachedSettingsStore(rdb, database.NewSettingsRepository(db))

	// 2. Gateways and adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	classifier := gemini.NewClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"),
		intEnvOr("MAIL_PORT", 587),
		os.Getenv("MAIL_USER"),
		os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@leadtrack.local"),
	)

	// 3. Use cases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, taskRepo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, interactionRepo, taskRepo)
	logInteractionUC := usecase.NewLogInteractionUseCase(leadRepo, interactionRepo, producer)
	processInteractionUC := usecase.NewProcessInteractionUseCase(leadRepo, taskRepo)
	completeTaskUC := usecase.NewCompleteTaskUseCase(taskRepo, interactionRepo, producer)
	advanceOverdueUC := usecase.NewAdvanceOverdueUseCase(taskRepo, interactionRepo, producer)
	importContactsUC := usecase.NewImportContactsUseCase(leadRepo)
	focusQueueUC := usecase.NewFocusQueueUseCase(leadRepo, taskRepo)
	updateSettingsUC := usecase.NewUpdateSettingsUseCase(settingsRepo)
	analyzeLeadUC := usecase.NewAnalyzeLeadUseCase(classifier, settingsRepo)
	sendDigestUC := usecase.NewSendDigestUseCase(taskRepo, mailSender, os.Getenv("DIGEST_TO"))

	// 4. Background workers
	queueWorker := queue.NewWorker(rabbitMQ.Ch, processInteractionUC)
	go queueWorker.Start(queue.QueueName)

	overdueAdvancer := worker.NewOverdueAdvancer(advanceOverdueUC)
	go overdueAdvancer.Start(ctx)

	digestScheduler := worker.NewDigestScheduler(sendDigestUC)
	go digestScheduler.Start(ctx)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, deleteLeadUC, leadRepo)
	interactionHandler := handlers.NewInteractionHandler(logInteractionUC, interactionRepo)
	taskHandler := handlers.NewTaskHandler(completeTaskUC, taskRepo, leadRepo)
	settingsHandler := handlers.NewSettingsHandler(updateSettingsUC, settingsRepo)
	catalogHandler := handlers.NewCatalogHandler(settingsRepo)
	analysisHandler := handlers.NewAnalysisHandler(analyzeLeadUC)
	importHandler := handlers.NewImportHandler(importContactsUC)
	focusHandler := handlers.NewFocusHandler(focusQueueUC)
	digestHandler := handlers.NewDigestHandler(sendDigestUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, rdb)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.HandleCreate)
	r.Get("/leads", leadHandler.HandleList)
	r.Get("/leads/{leadId}", leadHandler.HandleGet)
	r.Patch("/leads/{leadId}", leadHandler.HandlePatch)
	r.Put("/leads/{leadId}/quote", leadHandler.HandleQuote)
	r.Delete("/leads/{leadId}", leadHandler.HandleDelete)
	r.Get("/leads/{leadId}/interactions", interactionHandler.HandleListByLead)

	r.Post("/interactions", interactionHandler.HandleCreate)

	r.Post("/tasks", taskHandler.HandleCreate)
	r.Get("/tasks", taskHandler.HandleList)
	r.Patch("/tasks/{taskId}", taskHandler.HandlePatch)

	r.Get("/focus", focusHandler.HandleGet)

	r.Get("/settings", settingsHandler.HandleGet)
	r.Post("/settings/{list}/options", settingsHandler.HandleAddOption)
	r.Put("/settings/{list}/options", settingsHandler.HandleRenameOption)
	r.Delete("/settings/{list}/options", settingsHandler.HandleRemoveOption)
	r.Put("/settings/analysis-prompt", settingsHandler.HandleSetPrompt)
	r.Get("/catalog", catalogHandler.HandleGet)

	r.Post("/analysis/lead-potential", analysisHandler.HandleAnalyze)
	r.Post("/contacts/import", importHandler.HandleImport)
	r.Post("/digest/send", digestHandler.HandleSend)

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 LeadTrack API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnvOr(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
