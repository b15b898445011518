package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tarapurtransport/assets"
	"tarapurtransport/auth"
	"tarapurtransport/config"
	"tarapurtransport/db"
	"tarapurtransport/db/mongo"
	"tarapurtransport/db/postgres"
	"tarapurtransport/handlers"
	"tarapurtransport/renderer"
	"tarapurtransport/repository"
	"tarapurtransport/routes"
	"tarapurtransport/views"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET not set in environment")
	}

	var (
		receiptRepo  repository.LorryReceiptRepository
		quoteRepo    repository.QuotationRepository
		loadingRepo  repository.LoadingSlipRepository
		deliveryRepo repository.DeliverySlipRepository
		companyRepo  repository.CompanyRepository
		userRepo     repository.UserRepository
	)

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logger.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pg.Disconnect()

		receiptRepo = repository.NewPostgresLorryReceiptRepo(pg.Conn)
		quoteRepo = repository.NewPostgresQuotationRepo(pg.Conn)
		loadingRepo = repository.NewPostgresLoadingSlipRepo(pg.Conn)
		deliveryRepo = repository.NewPostgresDeliverySlipRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logger.Fatal("mongo connect failed", zap.Error(err))
		}
		defer mg.Disconnect()

		receiptRepo = repository.NewMongoLorryReceiptRepo(mg.Client)
		quoteRepo = repository.NewMongoQuotationRepo(mg.Client)
		loadingRepo = repository.NewMongoLoadingSlipRepo(mg.Client)
		deliveryRepo = repository.NewMongoDeliverySlipRepo(mg.Client)
		companyRepo = repository.NewMongoCompanyRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		logger.Fatal("DB_TYPE not supported", zap.String("dbType", cfg.DBType))
	}

	pdfService := renderer.NewService(renderer.Config{
		ExecPath:       cfg.ChromePath,
		MaxBrowserUses: cfg.MaxBrowserUses,
		Timeout:        cfg.RenderTimeout,
		Logger:         logger,
	})
	defer pdfService.Shutdown()

	letterhead := views.Letterhead{
		Name:           cfg.CompanyName,
		Tagline:        cfg.CompanyTagline,
		AddressLines:   splitAddress(cfg.CompanyAddress),
		ContactNumbers: cfg.CompanyContact,
		Email:          cfg.CompanyEmail,
		GSTIN:          cfg.CompanyGSTIN,
		PAN:            cfg.CompanyPAN,
		LogoDataURI:    assets.LogoDataURI(),
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	handler := routes.New(routes.Handlers{
		LorryReceipts: &handlers.LorryReceiptHandler{
			Repo: receiptRepo, Companies: companyRepo,
			Renderer: pdfService, Letterhead: letterhead, Logger: logger,
		},
		Quotations: &handlers.QuotationHandler{
			Repo: quoteRepo, Companies: companyRepo,
			Renderer: pdfService, Letterhead: letterhead, Logger: logger,
		},
		LoadingSlips: &handlers.LoadingSlipHandler{
			Repo: loadingRepo, Companies: companyRepo, Logger: logger,
		},
		DeliverySlips: &handlers.DeliverySlipHandler{
			Repo: deliveryRepo, Companies: companyRepo, Logger: logger,
		},
		Invoices: &handlers.InvoiceHandler{
			Receipts: receiptRepo, Renderer: pdfService, Letterhead: letterhead, Logger: logger,
		},
		Companies: &handlers.CompanyHandler{Repo: companyRepo},
		Users:     &handlers.UserHandler{Repo: userRepo, JWT: jwtMgr},
	}, jwtMgr, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.RenderTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

func splitAddress(addr string) []string {
	if addr == "" {
		return nil
	}
	parts := strings.Split(addr, "|")
	out := parts[:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
