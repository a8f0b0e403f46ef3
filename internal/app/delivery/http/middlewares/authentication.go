package middlewares

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"
)

const sessionLookupTimeout = 10 * time.Second

// Authenticate resolves the bearer token to its Redis session and stores
// both the session and its id in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.ParseBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := m.SessionService.ParseToken(token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), sessionLookupTimeout)
		defer cancel()

		session, err := m.SessionService.Get(ctx, sessionID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the session's account type against the RBAC policy.
// It must run after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		path := r.URL.Path
		if m.BasePath != "/" {
			path = strings.TrimPrefix(path, m.BasePath)
		}
		if path == "" {
			path = "/"
		}

		allowed, err := m.Authorizer.Authorize(session.AccountType(), r.Method, path)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(err, r.Method, path, session.AccountType()))
			return
		}
		if !allowed {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil, r.Method, path, session.AccountType()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
