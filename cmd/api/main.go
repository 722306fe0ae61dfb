package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/nexus-pipeline/internal/config"
	"github.com/xavierca1/nexus-pipeline/internal/entity"
	"github.com/xavierca1/nexus-pipeline/internal/infra/clipboard"
	"github.com/xavierca1/nexus-pipeline/internal/infra/database"
	"github.com/xavierca1/nexus-pipeline/internal/infra/http/handlers"
	"github.com/xavierca1/nexus-pipeline/internal/infra/http/middleware"
	"github.com/xavierca1/nexus-pipeline/internal/infra/integration/nexus"
	"github.com/xavierca1/nexus-pipeline/internal/infra/mail"
	"github.com/xavierca1/nexus-pipeline/internal/infra/queue"
	"github.com/xavierca1/nexus-pipeline/internal/infra/worker"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Backend de leads + gerador de e-mails
	backend := nexus.NewClient(cfg.BackendURL, cfg.BackendTimeout)

	// 2. Postgres (feed de atividades), opcional
	var db *sql.DB
	var activityRepo entity.ActivityRepositoryInterface
	var recorder *database.ActivityRepository
	if cfg.DatabaseURL != "" {
		db, err = database.NewDBConnection(ctx, cfg.DatabaseURL, database.PoolOptions{MaxOpenConns: cfg.DatabaseMaxConns})
		if err != nil {
			log.Fatalf("falha ao conectar no Postgres: %v", err)
		}
		defer db.Close()

		recorder = database.NewActivityRepository(db)
		if err := recorder.EnsureSchema(ctx); err != nil {
			log.Fatal(err)
		}
		activityRepo = recorder
	}

	// 3. RabbitMQ (eventos de lead), opcional
	var rabbitConn *amqp.Connection
	var publisher usecase.LeadEventPublisher
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn
		publisher = queue.NewProducer(rabbitMQ.Ch)

		if recorder != nil {
			consumerCh, err := rabbitMQ.Conn.Channel()
			if err != nil {
				log.Fatalf("falha ao abrir canal do worker: %v", err)
			}
			defer consumerCh.Close()

			activityWorker := queue.NewWorker(consumerCh, recorder)
			go func() {
				if err := activityWorker.Start(ctx, queue.QueueName); err != nil {
					log.Printf("❌ Worker de atividades: %v", err)
				}
			}()
		}
	}

	// 4. Core
	store := usecase.NewLeadStore(backend, publisher)
	drafts := usecase.NewEmailDraftOrchestrator(backend)
	drafts.OnSettle = func(st usecase.DraftState) {
		middleware.RecordDraftCycle(string(st.Phase))
	}

	var mailer usecase.DraftMailer
	if cfg.MailEnabled() {
		mailer = mail.NewDraftSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	}

	// 5. Workers
	go worker.NewSnapshotRefresher(store, cfg.RefreshInterval).Start(ctx)
	if cfg.RefreshInterval <= 0 {
		store.Refresh(ctx)
	}

	// 6. Handlers + router
	draftHandler := handlers.NewDraftHandler(store, drafts, clipboard.NewBuffer(), mailer, cfg.DraftRateLimit)
	go draftHandler.CleanupLimiter(ctx)

	router := newRouter(routes{
		leads:     handlers.NewLeadHandler(store),
		analytics: handlers.NewAnalyticsHandler(store),
		drafts:    draftHandler,
		activity:  handlers.NewActivityHandler(activityRepo),
		health:    handlers.NewHealthHandler(db, rabbitConn, store),
	}, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🔥 Nexus pipeline rodando na porta %s (backend %s)", cfg.Port, cfg.BackendURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
