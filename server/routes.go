package server

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("POST "+RouteAPILogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
}
