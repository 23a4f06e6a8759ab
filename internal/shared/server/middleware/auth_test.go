package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-booster/internal/identity"
)

type staticVerifier struct {
	ident identity.Identity
	err   error
}

func (v *staticVerifier) Verify(ctx context.Context, token string) (identity.Identity, error) {
	return v.ident, v.err
}

func newAuthRouter(verifier identity.Verifier, skipPrefixes ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(verifier, skipPrefixes...))
	handler := func(c *gin.Context) {
		ident, _ := identity.FromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": ident.ID})
	}
	r.GET("/private", handler)
	r.GET("/auth/google/login", handler)
	return r
}

func TestAuthSetsIdentity(t *testing.T) {
	r := newAuthRouter(&staticVerifier{ident: identity.Identity{ID: "user-7"}})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["userId"] != "user-7" {
		t.Fatalf("userId = %q", body["userId"])
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(&staticVerifier{ident: identity.Identity{ID: "user-7"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["detail"]; !ok {
		t.Fatalf("missing detail in %s", w.Body.String())
	}
}

func TestAuthRejectsNonBearerScheme(t *testing.T) {
	r := newAuthRouter(&staticVerifier{ident: identity.Identity{ID: "user-7"}})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuthMapsVerifierErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", identity.ErrUnauthenticated, http.StatusUnauthorized},
		{"unknown user", identity.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(&staticVerifier{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			req.Header.Set("Authorization", "Bearer sometoken")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAuthSkipsConfiguredPrefixes(t *testing.T) {
	r := newAuthRouter(&staticVerifier{err: identity.ErrUnauthenticated}, "/auth/google/")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestAuthShortCircuitsPreflight(t *testing.T) {
	r := newAuthRouter(&staticVerifier{err: identity.ErrUnauthenticated})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/private", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}
