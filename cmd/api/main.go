package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zenith-backend/internal/admin"
	"zenith-backend/internal/analytics"
	"zenith-backend/internal/assistant"
	"zenith-backend/internal/auth"
	"zenith-backend/internal/blog"
	"zenith-backend/internal/cache"
	"zenith-backend/internal/catalog"
	"zenith-backend/internal/config"
	"zenith-backend/internal/db"
	"zenith-backend/internal/estimate"
	"zenith-backend/internal/inquiry"
	"zenith-backend/internal/mailer"
	"zenith-backend/internal/middleware"
	"zenith-backend/internal/portfolio"
	"zenith-backend/internal/pricing"
	"zenith-backend/internal/sitecontent"
	"zenith-backend/internal/stats"
	"zenith-backend/internal/team"
	"zenith-backend/internal/users"
	"zenith-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "zenith-backend",
		}
	}

	val := validation.New()

	smtp := mailer.New(mailer.Config{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUser,
		Password:   cfg.SMTPPass,
		SenderName: cfg.SenderName,
		Domain:     cfg.DKIMDomain,
	}, logger)

	blogRepo := blog.NewRepository(cols.Blogs)
	blogService := blog.NewService(blogRepo, cfg.Timezone)
	blogHandler := blog.NewHandler(blogService, val, logger)

	portfolioRepo := portfolio.NewRepository(cols.Portfolios)
	portfolioService := portfolio.NewService(portfolioRepo, cfg.Timezone)
	portfolioHandler := portfolio.NewHandler(portfolioService, val, logger)

	catalogRepo := catalog.NewRepository(client, cols.Services, cols.ServiceWorks)
	catalogLogic := catalog.NewLogic(catalogRepo, cfg.Timezone)
	catalogHandler := catalog.NewHandler(catalogLogic, val, logger, cacheStore, cacheTTL)

	teamRepo := team.NewRepository(cols.TeamMembers)
	teamService := team.NewService(teamRepo, cfg.Timezone)
	teamHandler := team.NewHandler(teamService, val, logger)

	usersRepo := users.NewRepository(cols.Users)
	usersService := users.NewService(usersRepo, cfg.Timezone)
	usersHandler := users.NewHandler(usersService, val, logger)

	pricingRepo := pricing.NewRepository(cols.PricingPlans, cols.FeatureComparison, cols.PricingCalculator)
	pricingService := pricing.NewService(pricingRepo)
	pricingHandler := pricing.NewHandler(pricingService, val, logger, cacheStore, cacheTTL)

	statsRepo := stats.NewRepository(cols.Stats)
	statsService := stats.NewService(statsRepo)
	statsHandler := stats.NewHandler(statsService, val, logger)

	inquiryRepo := inquiry.NewRepository(cols.Inquiries)
	inquiryService := inquiry.NewService(inquiryRepo, smtp, cfg.Timezone)
	inquiryHandler := inquiry.NewHandler(inquiryService, val, logger)

	siteRepo := sitecontent.NewRepository(cols.PartnerLogos, cols.HeroBackground)
	siteService := sitecontent.NewService(siteRepo, cfg.Timezone)
	siteHandler := sitecontent.NewHandler(siteService, val, logger)

	estimateHandler := estimate.NewHandler(val, logger)
	mailHandler := mailer.NewHandler(smtp, val, logger)
	chatHandler := assistant.NewHandler(assistant.NewClient(cfg.GeminiAPIKey), logger)
	analyticsHandler := analytics.NewHandler(analytics.NewClient(cfg.GAPropertyID, cfg.GAClientEmail, cfg.GAPrivateKey), logger)

	adminRepo := admin.NewRepository(cols.AdminUsers)
	adminHandler := admin.NewHandler(adminRepo, jwtManager, val, logger, cfg.AdminSetupKey, cfg.CookieSecure, cfg.Timezone)

	adminAuth := middleware.AdminAuth(cfg.AdminAPIKey, jwtManager)
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	chatLimiter := middleware.NewRateLimiter(cfg.RateLimitChat, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(90 * time.Second))

	r.Route("/api", func(api chi.Router) {
		api.Get("/blogs", blogHandler.PublicList)
		api.Get("/blogs/slugs", blogHandler.PublicListSlugs)
		api.Get("/blogs/{slug}", blogHandler.PublicGetBySlug)

		api.Get("/portfolios", portfolioHandler.PublicList)
		api.Get("/portfolios/ids", portfolioHandler.PublicListIDs)
		api.Get("/portfolios/{id}", portfolioHandler.PublicGetByID)

		api.Get("/services", catalogHandler.PublicList)
		api.Get("/services/{id}", catalogHandler.PublicGetByID)

		api.Get("/team", teamHandler.PublicList)
		api.Get("/team/{id}", teamHandler.PublicGetByID)

		api.Get("/pricing/plans", pricingHandler.PublicPlans)
		api.Get("/pricing/plans/{slug}", pricingHandler.PublicPlanBySlug)
		api.Get("/pricing/comparison", pricingHandler.PublicComparison)
		api.Get("/pricing/calculator", pricingHandler.PublicCalculator)

		api.Post("/estimate", estimateHandler.Estimate)

		api.Get("/stats", statsHandler.PublicList)

		api.Get("/partner-logos", siteHandler.PublicLogos)
		api.Get("/hero-background", siteHandler.PublicHero)

		api.With(contactLimiter.Middleware).Post("/contact", inquiryHandler.PublicCreate)
		api.With(chatLimiter.Middleware).Post("/chat", chatHandler.Chat)

		// kept at their historical paths, but an open SMTP relay and the
		// dashboard metrics feed both require an admin session.
		api.With(adminAuth).Post("/send-email", mailHandler.Send)
		api.With(adminAuth).Get("/analytics", analyticsHandler.Overview)

		api.Route("/admin", func(ar chi.Router) {
			ar.Post("/register", adminHandler.Register)
			ar.Post("/login", adminHandler.Login)
			ar.Post("/refresh", adminHandler.Refresh)
			ar.Post("/logout", adminHandler.Logout)

			// chi requires middlewares before route definitions; session
			// endpoints stay public, everything else goes through the gate.
			ar.Group(func(protected chi.Router) {
				protected.Use(adminAuth)

				protected.Get("/blogs", blogHandler.AdminList)
				protected.Post("/blogs", blogHandler.AdminCreate)
				protected.Put("/blogs/{id}", blogHandler.AdminUpdate)
				protected.Delete("/blogs/{id}", blogHandler.AdminDelete)

				protected.Post("/portfolios", portfolioHandler.AdminCreate)
				protected.Put("/portfolios/{id}", portfolioHandler.AdminUpdate)
				protected.Delete("/portfolios/{id}", portfolioHandler.AdminDelete)

				protected.Get("/services", catalogHandler.AdminList)
				protected.Post("/services", catalogHandler.AdminCreate)
				protected.Put("/services/{id}", catalogHandler.AdminUpdate)
				protected.Delete("/services/{id}", catalogHandler.AdminDelete)

				protected.Post("/team", teamHandler.AdminCreate)
				protected.Put("/team/{id}", teamHandler.AdminUpdate)
				protected.Delete("/team/{id}", teamHandler.AdminDelete)

				protected.Get("/users", usersHandler.AdminList)
				protected.Get("/users/{id}", usersHandler.AdminGet)
				protected.Post("/users", usersHandler.AdminCreate)
				protected.Put("/users/{id}", usersHandler.AdminUpdate)
				protected.Delete("/users/{id}", usersHandler.AdminDelete)

				protected.Get("/pricing/plans", pricingHandler.AdminPlans)
				protected.Put("/pricing/plans", pricingHandler.AdminSavePlans)
				protected.Delete("/pricing/plans/{id}", pricingHandler.AdminDeletePlan)
				protected.Post("/pricing/plans/{id}/move", pricingHandler.AdminMovePlan)
				protected.Get("/pricing/features", pricingHandler.AdminFeatures)
				protected.Put("/pricing/features", pricingHandler.AdminSaveFeatures)
				protected.Delete("/pricing/features/{id}", pricingHandler.AdminDeleteFeature)
				protected.Post("/pricing/features/{id}/move", pricingHandler.AdminMoveFeature)
				protected.Get("/pricing/calculator", pricingHandler.AdminCalculator)
				protected.Put("/pricing/calculator", pricingHandler.AdminSaveCalculator)

				protected.Get("/stats", statsHandler.AdminList)
				protected.Put("/stats", statsHandler.AdminSave)
				protected.Delete("/stats/{id}", statsHandler.AdminDelete)
				protected.Post("/stats/{id}/move", statsHandler.AdminMove)

				protected.Get("/inquiries", inquiryHandler.AdminList)
				protected.Patch("/inquiries/{id}/status", inquiryHandler.AdminSetStatus)
				protected.Delete("/inquiries/{id}", inquiryHandler.AdminDelete)
				protected.Post("/inquiries/{id}/reply", inquiryHandler.AdminReply)

				protected.Post("/partner-logos", siteHandler.AdminAddLogo)
				protected.Delete("/partner-logos/{id}", siteHandler.AdminDeleteLogo)
				protected.Put("/hero-background", siteHandler.AdminUpdateHero)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
