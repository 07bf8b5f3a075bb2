package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/coursehub/coursehub-go/internal/crypto"
	"github.com/coursehub/coursehub-go/internal/handler"
	"github.com/coursehub/coursehub-go/internal/middleware"
	"github.com/coursehub/coursehub-go/internal/service"
)

const (
	healthPath  = "/health"
	authPath    = "/auth"
	coursesPath = "/courses"

	paramID = "id"
)

// Deps holds what the router needs to build its handlers.
type Deps struct {
	Tokens  *crypto.TokenService
	Users   service.UserStore
	Courses service.CourseStore

	// Per-IP limit applied to the /auth routes.
	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// NewRouter wires middleware, handlers and routes into a single handler.
func NewRouter(d Deps) http.Handler {
	authHandler := handler.NewAuthHandler(service.NewAuthService(d.Users, d.Tokens))
	courseHandler := handler.NewCourseHandler(service.NewCourseService(d.Courses))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get(healthPath, handler.HandleHealth)

	r.Route(authPath, func(r chi.Router) {
		r.Use(middleware.RateLimit(d.AuthRateLimitRPS, d.AuthRateLimitBurst))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Route(coursesPath, func(r chi.Router) {
		r.Use(middleware.Authenticate(d.Tokens, d.Users))
		r.Get("/", courseHandler.HandleListCourses)
		r.Post("/", courseHandler.HandleCreateCourse)
		r.Get("/{"+paramID+"}", courseHandler.HandleGetCourse)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
