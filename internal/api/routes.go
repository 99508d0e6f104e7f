package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/softhouse/dreams-gateway/internal/service"
)

// RegisterRoutes mounts one sub-router per service on r.
func RegisterRoutes(r chi.Router, services []service.ResourceService, maxBodyBytes int64) {
	for _, svc := range services {
		c := svc.Collection()
		h := NewResourceHandler(svc, maxBodyBytes)

		r.Route("/"+c.Name, func(r chi.Router) {
			r.Post("/", h.Create)
			r.Get("/", h.List)

			// Side routes are static segments and win over /{id}.
			for _, side := range c.Sides {
				r.Get("/"+side.Route+"/{id}", h.ListBySide(side.Route))
				r.Delete("/"+side.Route+"/{id}", h.DeleteBySide(side.Route))
			}

			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	}
}
