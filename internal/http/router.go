// Package http wires the service layer to the HTTP boundary.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/internal/store"
	"github.com/agrisense/agrisense/pkg/httpx"
	"github.com/agrisense/agrisense/pkg/slogx"

	_ "github.com/agrisense/agrisense/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier  httpx.TokenVerifier
	logger    *slog.Logger
	startTime time.Time
	store     store.Store

	OTPService          *service.OTPService
	AuthService         *service.AuthService
	TokenService        *service.TokenService
	RegistrationService *service.RegistrationService
	RecordService       *service.RecordService
	ReportService       *service.ReportService
}

func NewRouter(verifier httpx.TokenVerifier, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		verifier:  verifier,
		logger:    logger,
		startTime: time.Now(),
		store:     st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOTP()
	r.registerAuth()
	r.registerOnboarding()
	r.registerRecords()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Agrisense API
//	@version		1.0
//	@description	Record-keeping backend for agricultural operations: account
//	@description	registration, OTP and token based authentication, farm record
//	@description	books and read-only reports.
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

func (r *Router) registerOTP() {
	h := &OTPHandler{OTPService: r.OTPService}

	// Issuance is strict: every request writes a row.
	strict := httpx.RateLimitMiddleware(httpx.ProfileStrict)

	r.Mux.Handle("POST /otp/request", httpx.Chain(http.HandlerFunc(h.Request), strict))
	r.Mux.Handle("POST /otp/resend", httpx.Chain(http.HandlerFunc(h.Resend), strict))
	r.Mux.Handle("POST /otp/verify", httpx.Chain(http.HandlerFunc(h.Verify),
		httpx.RateLimitMiddleware(httpx.ProfileModerate)))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, TokenService: r.TokenService}

	r.Mux.Handle("POST /api/signin", httpx.Chain(http.HandlerFunc(h.SignIn),
		httpx.RateLimitMiddleware(httpx.ProfileStrict)))
	r.Mux.Handle("POST /signout", httpx.Chain(http.HandlerFunc(h.SignOut),
		httpx.RateLimitMiddleware(httpx.ProfileModerate)))
	r.Mux.Handle("POST /token/refresh", httpx.Chain(http.HandlerFunc(h.Refresh),
		httpx.RateLimitMiddleware(httpx.ProfileModerate)))
	r.Mux.Handle("POST /reset-password", httpx.Chain(http.HandlerFunc(h.ResetPassword),
		httpx.RateLimitMiddleware(httpx.ProfileStrict)))
}

func (r *Router) registerOnboarding() {
	h := &RegisterHandler{RegistrationService: r.RegistrationService}

	moderate := httpx.RateLimitMiddleware(httpx.ProfileModerate)

	r.Mux.Handle("POST /register/farmer", httpx.Chain(http.HandlerFunc(h.Farmer), moderate))
	r.Mux.Handle("POST /register/company", httpx.Chain(http.HandlerFunc(h.Company), moderate))
	r.Mux.Handle("POST /register/farm", httpx.Chain(http.HandlerFunc(h.Farm), moderate))
}

func (r *Router) registerRecords() {
	h := &RecordsHandler{RecordService: r.RecordService}

	authed := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitMiddleware(httpx.ProfileLenient),
		)
	}

	for _, route := range h.routes() {
		r.Mux.Handle("POST /"+route.path, authed(route.add))
		r.Mux.Handle("PUT /"+route.path+"/update/{id}", authed(route.update))
		r.Mux.Handle("DELETE /"+route.path+"/delete/{id}", authed(route.del))
	}
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportService: r.ReportService}

	authed := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitMiddleware(httpx.ProfileLenient),
		)
	}

	r.Mux.Handle("GET /reports/waterUsageByBlock", authed(h.WaterUsage))
	r.Mux.Handle("GET /reports/diseaseSymptoms", authed(h.DiseaseSymptoms))
	r.Mux.Handle("GET /reports/incidents", authed(h.Incidents))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", &LivezHandler{StartTime: r.startTime})
	r.Mux.Handle("GET /readyz", &ReadyzHandler{Store: r.store})
}
