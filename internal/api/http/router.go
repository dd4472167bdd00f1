package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prioritypro/prioritypro/internal/api/service"
	"github.com/prioritypro/prioritypro/internal/api/store"
	"github.com/prioritypro/prioritypro/pkg/httpx"
	"github.com/prioritypro/prioritypro/pkg/jwtx"
	"github.com/prioritypro/prioritypro/pkg/slogx"

	_ "github.com/prioritypro/prioritypro/api/taskapi" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
	TokenService   *service.TokenService
	TaskService    *service.TaskService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PriorityPro Task Service API
//	@version		0.1.0
//	@description	Personal task management backend with stateless token authentication.
//	@description
//	@description				Registration and login are public; every /tasks endpoint requires a
//	@description				bearer token obtained from the login endpoint. Tokens are signed with
//	@description				HS256 and expire after 24 hours by default.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	loginHandler := &LoginHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
	}

	r.Mux.Handle("POST /auth/register", registerHandler)
	r.Mux.Handle("POST /auth/login", loginHandler)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	// Every task route sits behind token verification. Ownership is
	// enforced below in the service layer, keyed by the token subject.
	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /tasks", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /tasks", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("PATCH /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /tasks/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService))
}
