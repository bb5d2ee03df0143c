package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brycec/wagerbot/internal/config"
	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/golang-jwt/jwt/v5"
)

func testAPI(t *testing.T) (*API, *ledger.Memory) {
	t.Helper()
	mem := ledger.NewMemory()
	cfg := &config.Config{
		JWTSecret: "test-secret",
		AdminIDs:  []int64{100},
	}
	return New(cfg, mem), mem
}

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestLeaderboardHandler(t *testing.T) {
	a, mem := testAPI(t)
	ctx := context.Background()
	mem.SetBalance(ctx, 1, 50)
	mem.SetBalance(ctx, 2, 200)
	mem.SetBalance(ctx, 3, 100)

	req := httptest.NewRequest("GET", "/api/public/leaderboard", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var rows []ledger.Stats
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].UserID != 2 || rows[1].UserID != 3 || rows[2].UserID != 1 {
		t.Errorf("unexpected order: %d, %d, %d", rows[0].UserID, rows[1].UserID, rows[2].UserID)
	}
}

func TestPublicStatsRejectsBadUserID(t *testing.T) {
	a, _ := testAPI(t)

	req := httptest.NewRequest("GET", "/api/public/users/notanumber/stats", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	a, _ := testAPI(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "42"), http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, "test-secret", "42"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/me/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			a.router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	a, mem := testAPI(t)

	body := strings.NewReader(`{"amount": 500}`)
	req := httptest.NewRequest("PUT", "/api/admin/users/7/balance", body)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "42"))
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", w.Code)
	}

	req = httptest.NewRequest("PUT", "/api/admin/users/7/balance", strings.NewReader(`{"amount": 500}`))
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "100"))
	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin, got %d", w.Code)
	}

	balance, err := mem.Balance(context.Background(), 7)
	if err != nil {
		t.Fatalf("failed to read balance: %v", err)
	}
	if balance != 500 {
		t.Errorf("expected balance 500, got %d", balance)
	}
}

func TestAdjustWinRateValidation(t *testing.T) {
	a, _ := testAPI(t)

	req := httptest.NewRequest("PUT", "/api/admin/users/7/winrate", strings.NewReader(`{"percentage": 140}`))
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "100"))
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
