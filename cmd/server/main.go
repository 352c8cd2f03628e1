package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/config"
	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/handlers"
	"github.com/RenektonHokage/Tairet-MVP-sub001/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))

	// Configure session options
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	cartHandler := handlers.NewCartHandler(sessionStore, cfg.Session.Name)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.ViewCart)
		r.Post("/add", cartHandler.AddToCart)
		r.Post("/clear", cartHandler.ClearCart)
		r.Post("/items/{id}/quantity", cartHandler.UpdateCartItem)
		r.Post("/items/{id}/remove", cartHandler.RemoveCartItem)
		r.Post("/items/index/{index}/remove", cartHandler.RemoveCartItemByIndex)
	})

	r.Post("/checkout", cartHandler.ProcessCheckout)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
