package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const leaderboardLimit = 10

// Public handlers
func (a *API) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := leaderboardLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > 100 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	rows, err := a.ledger.Leaderboard(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func (a *API) handlePublicStats(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	stats, err := a.ledger.UserStats(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// Protected handlers
func (a *API) handleMyStats(w http.ResponseWriter, r *http.Request) {
	claims := requestClaims(r)
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		http.Error(w, "invalid token subject", http.StatusUnauthorized)
		return
	}

	stats, err := a.ledger.UserStats(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// Admin handlers
func (a *API) handleSetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.ledger.SetBalance(r.Context(), userID, req.Amount); err != nil {
		http.Error(w, "failed to set balance", http.StatusInternalServerError)
		return
	}
	a.writeUserStats(w, r, userID)
}

func (a *API) handleAddBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	var req struct {
		Delta int64 `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.ledger.AddBalance(r.Context(), userID, req.Delta); err != nil {
		http.Error(w, "failed to adjust balance", http.StatusInternalServerError)
		return
	}
	a.writeUserStats(w, r, userID)
}

func (a *API) handleSetWins(w http.ResponseWriter, r *http.Request) {
	a.setCounter(w, r, a.ledger.SetWins)
}

func (a *API) handleSetLosses(w http.ResponseWriter, r *http.Request) {
	a.setCounter(w, r, a.ledger.SetLosses)
}

func (a *API) handleAdjustWinRate(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	var req struct {
		Percentage float64 `json:"percentage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Percentage < 0 || req.Percentage > 100 {
		http.Error(w, "percentage must be between 0 and 100", http.StatusBadRequest)
		return
	}

	if err := a.ledger.AdjustWinRate(r.Context(), userID, req.Percentage); err != nil {
		http.Error(w, "failed to adjust win rate", http.StatusInternalServerError)
		return
	}
	a.writeUserStats(w, r, userID)
}

func (a *API) handleResetRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	if err := a.ledger.ResetRecord(r.Context(), userID); err != nil {
		http.Error(w, "failed to reset record", http.StatusInternalServerError)
		return
	}
	a.writeUserStats(w, r, userID)
}

// Helper functions
func pathUserID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["user_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}

func (a *API) setCounter(w http.ResponseWriter, r *http.Request, set func(ctx context.Context, userID, value int64) error) {
	userID, err := pathUserID(r)
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	var req struct {
		Value int64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Value < 0 {
		http.Error(w, "value must be non-negative", http.StatusBadRequest)
		return
	}

	if err := set(r.Context(), userID, req.Value); err != nil {
		http.Error(w, "failed to update record", http.StatusInternalServerError)
		return
	}
	a.writeUserStats(w, r, userID)
}

func (a *API) writeUserStats(w http.ResponseWriter, r *http.Request, userID int64) {
	stats, err := a.ledger.UserStats(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
