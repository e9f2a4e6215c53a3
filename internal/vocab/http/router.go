package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/vocab/internal/vocab/service"
	"github.com/aussiebroadwan/vocab/internal/vocab/store"
	"github.com/aussiebroadwan/vocab/pkg/httpx"
	"github.com/aussiebroadwan/vocab/pkg/jwtx"
	"github.com/aussiebroadwan/vocab/pkg/slogx"

	_ "github.com/aussiebroadwan/vocab/api/vocab" // Swagger docs
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
	metrics      *httpx.Metrics

	store           store.Store
	SessionService  *service.SessionService
	WordService     *service.WordService
	ProgressService *service.ProgressService
	SpeechService   *service.SpeechService

	// CookieSecure sets the Secure attribute on the refresh token cookie.
	CookieSecure bool
	// CORSOrigin is the allowed browser origin. Empty disables CORS headers.
	CORSOrigin string
	RateLimits httpx.RateLimitProfiles
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	metrics *httpx.Metrics,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      metrics,
		logger:       logger,
		CookieSecure: true,
		CORSOrigin:   "*",
		RateLimits:   httpx.DefaultRateLimits(),
	}
}

func (r *Router) ApplyRoutes() {
	r.middlewares = []httpx.Middleware{slogx.HTTPMiddleware(r.logger)}
	if r.CORSOrigin != "" {
		r.middlewares = append(r.middlewares, httpx.CORS(r.CORSOrigin))
	}

	r.registerAuth()
	r.registerWords()
	r.registerProgress()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Vocab Service API
//	@version		0.1.0
//	@description	Vocabulary learning backend: account sessions with rotating refresh tokens, word lists, lesson progress and a text-to-speech proxy.
//	@description
//	@description				Access tokens are HS256 JWTs valid for 15 minutes. Refresh tokens travel in the refreshToken cookie and are single-use.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/vocab
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
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

// handle registers h under pattern, instrumented with the pattern as the
// metrics route label.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	if r.metrics != nil {
		method, route, _ := strings.Cut(pattern, " ")
		mws = append([]httpx.Middleware{r.metrics.Instrument(method, route)}, mws...)
	}
	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

// guarded requires a valid access token and limits by user.
func (r *Router) guarded(cfg httpx.RateLimitConfig) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(cfg),
	}
}

func (r *Router) registerAuth() {
	auth := &AuthHandler{Sessions: r.SessionService, CookieSecure: r.CookieSecure}
	strict := httpx.RateLimitByIP(r.RateLimits.Strict)

	r.handle("POST /auth/register", http.HandlerFunc(auth.Register), strict)
	r.handle("POST /auth/login", http.HandlerFunc(auth.Login), strict)
	r.handle("POST /auth/refresh", http.HandlerFunc(auth.Refresh), strict)
	// Logout is cheap and must always succeed for the client.
	r.handle("POST /auth/logout", http.HandlerFunc(auth.Logout),
		httpx.RateLimitByIP(r.RateLimits.Moderate),
	)

	r.handle("GET /protected", http.HandlerFunc(ProtectedHandler), r.guarded(r.RateLimits.Lenient)...)
}

func (r *Router) registerWords() {
	words := &WordsHandler{Words: r.WordService}
	read := r.guarded(r.RateLimits.Lenient)
	write := r.guarded(r.RateLimits.Moderate)

	r.handle("POST /api/words/import", http.HandlerFunc(words.Import), write...)
	r.handle("GET /api/words", http.HandlerFunc(words.List), read...)
	r.handle("PUT /api/words/{id}", http.HandlerFunc(words.UpdateImage), write...)
	r.handle("GET /api/words/courses", http.HandlerFunc(words.Courses), read...)
	r.handle("GET /api/words/lessons", http.HandlerFunc(words.Lessons), read...)
	r.handle("DELETE /api/words/lessons/{lesson}", http.HandlerFunc(words.DeleteLesson), write...)

	if r.SpeechService != nil {
		speech := &SpeechHandler{Speech: r.SpeechService}
		r.handle("GET /api/speech", speech, r.guarded(r.RateLimits.Moderate)...)
	}
}

func (r *Router) registerProgress() {
	progress := &ProgressHandler{Progress: r.ProgressService}
	read := r.guarded(r.RateLimits.Lenient)
	write := r.guarded(r.RateLimits.Moderate)

	r.handle("POST /api/progress", http.HandlerFunc(progress.Create), write...)
	r.handle("GET /api/progress", http.HandlerFunc(progress.List), read...)
	r.handle("GET /api/progress/{course}/{lesson}", http.HandlerFunc(progress.Get), read...)
	r.handle("POST /api/progress/{course}/{lesson}/increment", http.HandlerFunc(progress.Increment), write...)
	r.handle("PUT /api/progress/{course}/{lesson}", http.HandlerFunc(progress.Set), write...)
}

func (r *Router) registerSystem() {
	public := httpx.RateLimitByIP(r.RateLimits.Public)

	r.Mux.Handle("GET /livez", httpx.Chain(LivezHandler(r.startTime, r.buildVersion), public))
	r.Mux.Handle("GET /readyz", httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store), public))
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
