package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"pdvstar/admin"
	"pdvstar/ads"
	"pdvstar/auth"
	"pdvstar/config"
	"pdvstar/db"
	"pdvstar/events"
	"pdvstar/kv"
	"pdvstar/mirror"
	"pdvstar/obs"
	"pdvstar/passes"
	"pdvstar/profile"
	"pdvstar/ratelim"
	"pdvstar/remote"
	"pdvstar/routes"
	"pdvstar/session"
	"pdvstar/syncer"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s in %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)
	router.Handler(http.MethodGet, "/metrics", obs.Handler())

	routes.AddAuthRoutes(router, rateLimiter)
	routes.AddEventsRoutes(router, rateLimiter)
	routes.AddAdsRoutes(router)
	routes.AddPassRoutes(router, rateLimiter)
	routes.AddProfileRoutes(router)
	routes.AddAdminRoutes(router, rateLimiter)

	return router
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Parse()
	obs.Init()

	conn, err := db.Open(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	defer conn.Close()

	var store kv.Store
	if cfg.RedisAddr != "" {
		store = kv.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		store = kv.NewMemory()
	}

	gateway := remote.New(conn)
	local := mirror.New(store, cfg.MinCoordsFraction, cfg.SeedEventCount)

	eventSync := syncer.NewEventSync(gateway, local)
	userSync := syncer.NewUserSync(gateway, local)
	adSync := syncer.NewAdSync(gateway)
	passSync := syncer.NewPassSync(gateway)

	directory := syncer.FallbackUsers(syncer.RemoteUsers(gateway), syncer.MirrorUsers(local))
	sessions := session.NewManager(store, directory, gateway, session.Config{
		UserTTL:       cfg.UserSessionTTL,
		AdminTTL:      cfg.AdminSessionTTL,
		AdminUser:     cfg.AdminUser,
		AdminPassword: cfg.AdminPassword,
	})

	// Initial dataset load. Remote failures fall back to the mirror so
	// startup never blocks on Postgres being reachable.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	eventSync.Load(loadCtx)
	userSync.Load(loadCtx)
	adSync.Load(loadCtx)
	passSync.Load(loadCtx)
	cancelLoad()
	log.Printf("initial load complete: %d events, %d users, %d ads (state %s)",
		len(eventSync.Events()), len(userSync.Users()), len(adSync.Ads()), eventSync.State())

	auth.Init(sessions)
	events.Init(eventSync)
	profile.Init(userSync, sessions)
	ads.Init(adSync)
	passes.Init(sessions, passSync)
	admin.Init(sessions, eventSync, userSync, passSync)

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(obs.Instrument(corsHandler)))

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped cleanly")
}
