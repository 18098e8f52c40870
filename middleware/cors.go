package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/sendemail/core/response"
)

// CORSConfig defines the cross-origin policy applied by CORSWithConfig.
type CORSConfig struct {
	// Skip bypasses CORS handling for matching requests.
	Skip func(r *http.Request) bool

	// AllowOrigins lists allowed origins. Empty or "*" allows all.
	AllowOrigins []string

	// AllowMethods lists methods a preflight may ask for.
	AllowMethods []string

	// AllowHeaders lists request headers a preflight may ask for.
	AllowHeaders []string

	// MaxAge is how long browsers may cache a preflight answer, in seconds.
	MaxAge int
}

// CORS answers browser preflight requests with the same policy the send
// endpoint advertises on every response (see response.Headers).
func CORS() func(http.Handler) http.Handler {
	h := response.Headers()
	return CORSWithConfig(CORSConfig{
		AllowOrigins: splitHeader(h["Access-Control-Allow-Origin"]),
		AllowMethods: splitHeader(h["Access-Control-Allow-Methods"]),
		AllowHeaders: splitHeader(h["Access-Control-Allow-Headers"]),
	})
}

// CORSWithConfig handles preflight requests (OPTIONS with
// Access-Control-Request-Method) itself: 204 with the policy headers when
// origin and method are allowed, 403 otherwise. Other requests reach next
// with Access-Control-Allow-Origin set for allowed origins.
func CORSWithConfig(cfg CORSConfig) func(http.Handler) http.Handler {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{http.MethodPost, http.MethodOptions}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Content-Type"}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	wildcard := len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")
			allowedOrigin, allowed := "*", wildcard
			if !wildcard && slices.Contains(cfg.AllowOrigins, origin) {
				allowedOrigin, allowed = origin, true
			}

			headers := w.Header()
			requestMethod := r.Header.Get("Access-Control-Request-Method")
			if r.Method != http.MethodOptions || requestMethod == "" {
				if allowed {
					headers.Set("Access-Control-Allow-Origin", allowedOrigin)
				}
				headers.Add("Vary", "Origin")
				next.ServeHTTP(w, r)
				return
			}

			if !allowed || !slices.Contains(cfg.AllowMethods, requestMethod) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			headers.Set("Access-Control-Allow-Origin", allowedOrigin)
			headers.Set("Access-Control-Allow-Methods", allowMethods)
			if r.Header.Get("Access-Control-Request-Headers") != "" {
				headers.Set("Access-Control-Allow-Headers", allowHeaders)
			}
			if cfg.MaxAge > 0 {
				headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
			headers.Add("Vary", "Origin")
			headers.Add("Vary", "Access-Control-Request-Method")
			headers.Add("Vary", "Access-Control-Request-Headers")

			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func splitHeader(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
