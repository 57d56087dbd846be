package api

import (
	"github.com/taranjyot-singh/portfolio-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler    healthHandler
	projectHandler   projectHandler
	contactHandler   contactHandler
	skillHandler     skillHandler
	biographyHandler biographyHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		healthHandler:    newHealthHandler(),
		projectHandler:   newProjectHandler(database.ProjectRepo()),
		contactHandler:   newContactHandler(database.ContactRepo()),
		skillHandler:     newSkillHandler(database.SkillRepo()),
		biographyHandler: newBiographyHandler(database.BiographyRepo()),
	}
}
