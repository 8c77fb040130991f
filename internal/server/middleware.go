package server

import (
	"net/http"
	"strings"
)

// corsAllowHeaders lists the request headers browser clients may send.
const corsAllowHeaders = "authorization, x-client-info, apikey, content-type"

// withCORS adds permissive CORS headers and answers preflight requests.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAuth is middleware that checks the bearer token on endpoints
// that need one. When no auth keys are configured, requests pass through.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys := s.services.APIKeys
		if len(keys) == 0 {
			next(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			writeAuthError(w, "Missing authorization header")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			writeAuthError(w, "Missing authorization header")
			return
		}

		for _, k := range keys {
			if token == k {
				next(w, r)
				return
			}
		}
		writeAuthError(w, "Unauthorized")
	}
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"error":"` + msg + `","fallback":true}`))
}
