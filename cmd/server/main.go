package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/DARK-V-98/flycargolanka-sub000/config"
	"github.com/DARK-V-98/flycargolanka-sub000/database"
	ipresolver "github.com/DARK-V-98/flycargolanka-sub000/middleware/ip_resolver"
	"github.com/DARK-V-98/flycargolanka-sub000/middleware/timer"
	httpapi "github.com/DARK-V-98/flycargolanka-sub000/protocol/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log.Println("✅ PUBLIC_BASE_URL =", cfg.PublicBaseURL)
	log.Println("✅ PAYHERE_SANDBOX =", cfg.PayhereSandbox)

	store, err := database.NewStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(ipresolver.Middleware)
	r.Use(timer.Middleware)

	app := httpapi.NewApp(cfg, store)
	app.RegisterRoutes(r)

	log.Printf("🚀 Server running on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, r))
}
