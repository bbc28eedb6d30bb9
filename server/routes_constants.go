package server

// Routes
const (
	RouteAPILogin = "/api/login"
	RouteHealth   = "/healthz"
)

const contentTypeJSON = "application/json"
