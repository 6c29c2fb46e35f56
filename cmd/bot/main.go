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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-cursos/internal/infra/database"
	"github.com/xavierca1/ligue-cursos/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-cursos/internal/infra/http/middleware"
	openaiclient "github.com/xavierca1/ligue-cursos/internal/infra/integration/openai"
	"github.com/xavierca1/ligue-cursos/internal/infra/integration/telegram"
	"github.com/xavierca1/ligue-cursos/internal/infra/mail"
	"github.com/xavierca1/ligue-cursos/internal/infra/queue"
	"github.com/xavierca1/ligue-cursos/internal/infra/session"
	"github.com/xavierca1/ligue-cursos/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Stores y gateway
	sessionDir := os.Getenv("SESSION_DIR")
	if sessionDir == "" {
		sessionDir = "data/sessions"
	}
	store, err := session.NewFileStore(sessionDir)
	if err != nil {
		log.Fatal(err)
	}
	catalog := database.NewGateway(db)

	// 2. Integraciones
	tgClient := telegram.NewClient(os.Getenv("TELEGRAM_BOT_TOKEN"))
	llmClient := openaiclient.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)

	// 3. Workers (consumen la cola y reconcilian pendientes)
	advisorEmail := os.Getenv("ADVISOR_EMAIL")
	worker := queue.NewWorker(rabbitMQ, mailSender, advisorEmail)
	go worker.Start(queue.QueueName)

	reconciler := queue.NewReconciler(store, store, producer)
	go reconciler.Start(context.Background())

	// 4. Núcleo de conversación
	faqPath := os.Getenv("FAQ_PATH")
	if faqPath == "" {
		faqPath = "data/faq.json"
	}
	faq, err := usecase.LoadFAQ(faqPath)
	if err != nil {
		log.Printf("⚠️ FAQ no disponible: %v", err)
	}

	umbralPromo := usecase.UmbralPromoDefault
	if v := os.Getenv("UMBRAL_PROMO"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			umbralPromo = parsed
		}
	}

	renderer := usecase.NewRenderer(faq)
	dispatcher := usecase.NewDispatcher(catalog, llmClient, renderer)
	escalator := usecase.NewEscalator(producer)
	controller := usecase.NewController(store, catalog, renderer, dispatcher, escalator, umbralPromo)
	pump := usecase.NewPump(controller, tgClient)
	defer pump.Stop()

	// 5. Handlers
	webhookHandler := handlers.NewWebhookHandler(pump, tgClient)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/webhook/telegram", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Bot de cursos escuchando en :%s", port)
	http.ListenAndServe(":"+port, r)
}
