package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the full route table under the /api prefix
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.healthHandler.status())

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/contact", handlers.contactHandler.submitMessage())
		r.Get("/contact", handlers.contactHandler.listMessages())
		r.Patch("/contact/{messageID}/read", handlers.contactHandler.markMessageRead())

		r.Get("/skills", handlers.skillHandler.listSkills())
		r.Post("/skills", handlers.skillHandler.createSkillCategory())
		r.Put("/skills/{category}", handlers.skillHandler.upsertSkillCategory())

		r.Get("/biography", handlers.biographyHandler.getBiography())
		r.Post("/biography", handlers.biographyHandler.upsertBiography())
	})
}
