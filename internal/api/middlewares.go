package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/pkg/logger"
	"github.com/samandr77/microservices/scheduling/pkg/token"
)

const (
	headerRequestID = "X-Request-Id"
	headerWorkMode  = "X-Work-Mode"
	cookieWorkMode  = "work_mode"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type TokenParser interface {
	Parse(accessToken string) (token.Claims, error)
}

type Middleware struct {
	tokens     TokenParser
	cronSecret string
}

func NewMiddleware(tokens TokenParser, cronSecret string) *Middleware {
	return &Middleware{
		tokens:     tokens,
		cronSecret: cronSecret,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), reqID)
		ctx = logger.SetLogType(ctx, "webrequest")
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetUserAgent(ctx, r.UserAgent())

		w.Header().Set(headerRequestID, reqID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			slog.InfoContext(ctx, "incoming request", "user_ip", r.RemoteAddr)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			rec := recover()
			if rec != nil {
				slog.ErrorContext(ctx, "panic", "error", rec, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), entity.ErrMsgInternal)
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Request-Id, X-Work-Mode")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			ip = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		ctx = logger.SetIP(ctx, ip)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth resolves the caller from the bearer token.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		claims, err := m.tokens.Parse(accessToken)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		ctx = entity.SetPrincipalToContext(ctx, entity.Principal{
			ID:       claims.User.ID,
			Role:     entity.Role(claims.User.Role),
			IsWorker: claims.User.IsWorker,
		})
		ctx = logger.SetUserID(ctx, claims.User.ID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission admits only principals whose role holds p. Must run after Auth.
func (m *Middleware) RequirePermission(p entity.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			principal, err := entity.PrincipalFromContext(ctx)
			if err != nil {
				SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
				return
			}

			if !entity.HasPermission(principal.Role, p) {
				SendErr(ctx, w, http.StatusForbidden,
					fmt.Errorf("role %s lacks %s: %w", principal.Role, p, entity.ErrForbidden), entity.ErrMsgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WorkMode reads the UI work mode toggle. It only changes what approvers see, never what they may do.
func (m *Middleware) WorkMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerWorkMode)
		if raw == "" {
			if c, err := r.Cookie(cookieWorkMode); err == nil {
				raw = c.Value
			}
		}

		mode := entity.ParseWorkMode(raw)

		ctx := entity.SetWorkModeToContext(r.Context(), mode)
		ctx = logger.SetWorkMode(ctx, string(mode))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CronAuth admits the external scheduler holding CRON_SECRET. An unset secret admits nobody.
func (m *Middleware) CronAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if m.cronSecret == "" {
			SendErr(ctx, w, http.StatusUnauthorized, errors.New("cron secret is not configured"), entity.ErrMsgUnauthorized)
			return
		}

		bearer, _ := request.BearerExtractor{}.ExtractToken(r)
		query := r.URL.Query().Get("secret")

		if !m.cronSecretMatches(bearer) && !m.cronSecretMatches(query) {
			SendErr(ctx, w, http.StatusUnauthorized, errors.New("invalid cron secret"), entity.ErrMsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(logger.SetLogType(ctx, "cron")))
	})
}

func (m *Middleware) cronSecretMatches(provided string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(m.cronSecret)) == 1
}
