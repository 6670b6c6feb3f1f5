package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind bearer token verification
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/profile", h.profile)
		r.Post("/api/user/updateProfile", h.updateProfile)

		r.Get("/api/orders", h.listOrders)
		r.Post("/api/orders", h.createOrder)
		r.Get("/api/orders/{id}", h.getOrder)
		r.Put("/api/orders/{id}", h.updateOrder)
		r.Delete("/api/orders/{id}", h.deleteOrder)

		r.Get("/api/services", h.listServices)
		r.Post("/api/services", h.createService)
		r.Get("/api/services/{id}", h.getService)
		r.Put("/api/services/{id}", h.updateService)
		r.Delete("/api/services/{id}", h.deleteService)

		r.Get("/api/dashboard-stats", h.dashboardStats)
		r.Get("/api/earnings", h.earnings)
	})

	return router
}
