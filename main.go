// Package main, patievi backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//   1.  Config'i yükle
//   2.  Logger'ı başlat (stdout/stderr + out.log/err.log)
//   3.  Database'i başlat (gömülü migration'lar ile)
//   4.  Repository'leri ve session store'u oluştur
//   5.  Service'leri oluştur (repository'ler ile)
//   6.  Handler'ları oluştur (service'ler ile)
//   7.  Middleware'ları oluştur
//   8.  Router'ı kur, route'ları bağla
//   9.  CORS yapılandır
//  10.  HTTP Server'ı başlat
//  11.  Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/akinalp/patievi/config"
	"github.com/akinalp/patievi/database"
	"github.com/akinalp/patievi/handlers"
	"github.com/akinalp/patievi/middleware"
	"github.com/akinalp/patievi/pkg/logger"
	"github.com/akinalp/patievi/repository"
	"github.com/akinalp/patievi/router"
	"github.com/akinalp/patievi/services"
	"github.com/akinalp/patievi/static"
)

func main() {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}

	// ─── 2. Logger ───
	appLog, err := logger.New(cfg.Log.Dir)
	if err != nil {
		log.Fatalf("[main] failed to initialize logger: %v", err)
	}
	defer appLog.Close()
	appLog.Info("patievi server starting (port=%d)", cfg.Server.Port)

	// ─── 3. Database ───
	//
	// Migration'lar binary'ye gömülü — diskte migrations dizini aranmaz.
	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to open embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrations)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 4. Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	animalRepo := repository.NewSQLiteAnimalRepo(db.Conn)
	sessions := repository.NewMemorySessionStore()

	// ─── 5. Service Layer ───
	authService := services.NewAuthService(userRepo, sessions, cfg.Session.TTL)
	animalService := services.NewAnimalService(animalRepo)

	// ─── 6. Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService, cfg.Session.ChaosSignOut)
	animalHandler := handlers.NewAnimalHandler(animalService)

	clientFS, err := fs.Sub(static.ClientFS, "client")
	if err != nil {
		log.Fatalf("[main] failed to open embedded client: %v", err)
	}
	clientRoute := handlers.NewClientRoute(clientFS)

	// ─── 7. Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)

	// ─── 8. Router ───
	//
	// Route'lar arasında öncelik sırası YOK — bir request'i birden fazla
	// route karşılarsa router bunu çakışma sayar ve 500 döner.
	// Bu yüzden pattern'lar birbirinden yapısal olarak ayrık tutulmalı.
	rt := router.New(appLog)

	rt.Register(router.NewRoute(http.MethodGet, "/", handlers.Home))

	// Auth — public endpoint'ler (token gerekmez)
	rt.Register(router.NewRoute(http.MethodPost, "/users/sign-up", authHandler.SignUp))
	rt.Register(router.NewRoute(http.MethodPost, "/users/sign-in", authHandler.SignIn))
	rt.Register(router.NewRoute(http.MethodDelete, "/users/sign-out", authHandler.SignOut))

	// Protected — authMw.RequireSession sarar
	rt.Register(router.NewRoute(http.MethodGet, "/users/me", authMw.RequireSession(authHandler.Me)))

	// Animals — okuma herkese açık, yazma oturum gerektirir
	rt.Register(router.NewRoute(http.MethodGet, "/animals", animalHandler.List))
	rt.Register(router.NewRoute(http.MethodGet, "/animals/:id", animalHandler.Get))
	rt.Register(router.NewRoute(http.MethodPost, "/animals", authMw.RequireSession(animalHandler.Create)))
	rt.Register(router.NewRoute(http.MethodPut, "/animals/:id", authMw.RequireSession(animalHandler.Update)))
	rt.Register(router.NewRoute(http.MethodDelete, "/animals/:id", authMw.RequireSession(animalHandler.Delete)))

	// Referans client — gömülü statik dosyalar, rest parametresi ile
	rt.Register(clientRoute)

	// ─── 9. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := corsHandler.Handler(rt)

	// ─── 10. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 11. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		appLog.Info("server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	appLog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	appLog.Info("server stopped gracefully")
}
