package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ferreirogomes/terrinha/contract"
)

// NewRouter wires every contract operation onto a chi router.
func NewRouter(c *contract.Contract) chi.Router {
	propertyHandler := NewPropertyHandler(c)
	tokenHandler := NewTokenHandler(c)
	marketHandler := NewMarketHandler(c)
	adminHandler := NewAdminHandler(c)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)

	r.Route("/properties", func(r chi.Router) {
		r.Post("/", propertyHandler.AddProperty)
		r.Get("/{id}", propertyHandler.GetProperty)
		r.Put("/{id}", propertyHandler.UpdateProperty)
		r.Post("/{id}/buy", propertyHandler.BuyProperty)
		r.Post("/{id}/tokenize", tokenHandler.Tokenize)
		r.Get("/{id}/tokens", tokenHandler.GetPropertyTokens)
		r.Post("/{id}/tokens/buy", tokenHandler.BuyTokens)
		r.Post("/{id}/tokens/transfer", tokenHandler.TransferTokens)
		r.Get("/{id}/tokens/balance/{holder}", tokenHandler.GetTokenBalance)
	})

	r.Route("/listings", func(r chi.Router) {
		r.Post("/", marketHandler.CreateListing)
		r.Get("/{id}", marketHandler.GetListing)
		r.Post("/{id}/buy", marketHandler.BuyListing)
		r.Post("/{id}/cancel", marketHandler.CancelListing)
	})

	r.Get("/users/{user}/properties", propertyHandler.GetUserProperties)
	r.Get("/transactions/{id}", adminHandler.GetTransaction)
	r.Get("/stats", adminHandler.GetStats)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/pause", adminHandler.SetPause)
		r.Post("/withdraw", adminHandler.WithdrawFees)
	})

	return r
}
