// @title           Media Share API
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /api
package main

import (
	"fmt"
	"log"
	"net/http"

	"serwer-mediow/internal/api"
	"serwer-mediow/internal/config"
	"serwer-mediow/internal/database"
	"serwer-mediow/internal/storage"
	"serwer-mediow/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "serwer-mediow/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	localStorage, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Nie można zainicjować local storage: %v", err)
	}
	log.Printf("Pliki będą przechowywane w: %s", cfg.Storage.Path)

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(cfg.Store.Path, localStorage, wsHub)
	log.Printf("Dokument danych: %s", cfg.Store.Path)

	server := api.NewServer(cfg, store, localStorage, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))
	r.Use(api.MetricsMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/ws", server.ServeWsHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Serwer mediów działa! Dokumentacja dostępna pod /swagger/index.html"))
	})

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", server.ListUsersHandler)
		r.Get("/users/{screen_name}", server.GetUserHandler)
		r.Get("/check-password", server.CheckPasswordHandler)
		r.Post("/create-or-update-user", server.CreateOrUpdateUserHandler)
		r.Post("/upload", server.UploadFileHandler)
		r.Get("/files/{data_dir_name}", server.ListFilesHandler)
	})

	// Uploaded payloads are served statically, straight from the namespace tree.
	filesServer := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.Storage.Path)))
	r.Get("/files/*", filesServer.ServeHTTP)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Uruchamianie serwera na porcie %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
