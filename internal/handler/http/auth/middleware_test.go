package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin@example.com",
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func protectedHandler() (http.Handler, *bool) {
	called := false
	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &called
}

func TestAuthz(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	tests := []struct {
		name     string
		method   string
		path     string
		authz    string
		wantCode int
	}{
		{
			name:     "missing token",
			method:   "POST",
			path:     "/articles",
			authz:    "",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			method:   "POST",
			path:     "/articles",
			authz:    "Token abc",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "admin write allowed",
			method:   "POST",
			path:     "/articles",
			authz:    "Bearer " + "VALID_ADMIN",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "viewer read allowed",
			method:   "GET",
			path:     "/articles/7",
			authz:    "Bearer " + "VALID_VIEWER",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "viewer write forbidden",
			method:   "POST",
			path:     "/articles",
			authz:    "Bearer " + "VALID_VIEWER",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown role forbidden",
			method:   "GET",
			path:     "/articles",
			authz:    "Bearer " + "VALID_GUEST",
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authz := tt.authz
			switch authz {
			case "Bearer VALID_ADMIN":
				authz = "Bearer " + signToken(t, RoleAdmin, time.Now().Add(time.Hour))
			case "Bearer VALID_VIEWER":
				authz = "Bearer " + signToken(t, RoleViewer, time.Now().Add(time.Hour))
			case "Bearer VALID_GUEST":
				authz = "Bearer " + signToken(t, "guest", time.Now().Add(time.Hour))
			}

			handler, _ := protectedHandler()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if authz != "" {
				req.Header.Set("Authorization", authz)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestAuthz_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	handler, called := protectedHandler()
	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, RoleAdmin, time.Now().Add(-time.Minute)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", rec.Code)
	}
	if *called {
		t.Error("handler ran with expired token")
	}
}

func TestAuthz_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "another-secret-another-secret-32")

	handler, _ := protectedHandler()
	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, RoleAdmin, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", rec.Code)
	}
}

func TestUserFromContext(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	var gotUser string
	handler := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, RoleAdmin, time.Now().Add(time.Hour)))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotUser != "admin@example.com" {
		t.Errorf("user = %q, want admin@example.com", gotUser)
	}
}
