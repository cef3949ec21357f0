package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	ApplicationHandler *ApplicationHandler
	HealthHandler      *HealthHandler
}
