package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"beandex/internal/engine"
)

type handler struct {
	store  *engine.Store
	logger *slog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type addItemRequest struct {
	Name         string   `json:"name"`
	AnimalType   string   `json:"animal_type"`
	Variant      string   `json:"variant"`
	Colors       []string `json:"colors"`
	Thumbnail    string   `json:"thumbnail"`
	ValueLow     float64  `json:"estimated_value_low"`
	ValueHigh    float64  `json:"estimated_value_high"`
	AdjustedLow  *float64 `json:"adjusted_value_low"`
	AdjustedHigh *float64 `json:"adjusted_value_high"`
	Tier         int      `json:"tier"`
	Condition    string   `json:"condition"`
	PelletType   string   `json:"pellet_type"`
	ValueNotes   string   `json:"value_notes"`
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	item, err := h.store.AddItem(engine.AddItemInput{
		Name:         req.Name,
		AnimalType:   req.AnimalType,
		Variant:      req.Variant,
		Colors:       req.Colors,
		Thumbnail:    req.Thumbnail,
		ValueLow:     req.ValueLow,
		ValueHigh:    req.ValueHigh,
		AdjustedLow:  req.AdjustedLow,
		AdjustedHigh: req.AdjustedHigh,
		Tier:         engine.Tier(req.Tier),
		Condition:    req.Condition,
		PelletType:   req.PelletType,
		ValueNotes:   req.ValueNotes,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *handler) listItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Collection())
}

func (h *handler) removeItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.RemoveItem(id) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) clearCollection(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCollection()
	w.WriteHeader(http.StatusNoContent)
}

type statusResponse struct {
	UserName       string           `json:"user_name"`
	Onboarded      bool             `json:"onboarded"`
	Level          engine.LevelInfo `json:"level"`
	TotalXP        int              `json:"total_xp"`
	Streak         int              `json:"streak"`
	LongestStreak  int              `json:"longest_streak"`
	CollectionSize int              `json:"collection_size"`
	TotalValueLow  float64          `json:"total_value_low"`
	TotalValueHigh float64          `json:"total_value_high"`
	Achievements   int              `json:"achievements_unlocked"`
	TotalVisible   int              `json:"achievements_total"`
}

func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	low, high := h.store.TotalValue()
	unlocked, total := h.store.AchievementProgress()
	writeJSON(w, http.StatusOK, statusResponse{
		UserName:       h.store.UserName(),
		Onboarded:      h.store.Onboarded(),
		Level:          h.store.Level(),
		TotalXP:        h.store.TotalXP(),
		Streak:         h.store.Streak(),
		LongestStreak:  h.store.LongestStreak(),
		CollectionSize: len(h.store.Collection()),
		TotalValueLow:  low,
		TotalValueHigh: high,
		Achievements:   unlocked,
		TotalVisible:   total,
	})
}

func (h *handler) achievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Achievements())
}

func (h *handler) challenge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.TodaysChallenge())
}

func (h *handler) loginBonus(w http.ResponseWriter, r *http.Request) {
	bonus := h.store.CheckDailyLoginBonus()
	if bonus == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"awarded": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"awarded": true, "bonus": bonus})
}

type profileRequest struct {
	UserName  *string `json:"user_name"`
	Onboarded *bool   `json:"onboarded"`
}

func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserName != nil {
		h.store.SetUserName(*req.UserName)
	}
	if req.Onboarded != nil && *req.Onboarded {
		h.store.CompleteOnboarding()
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"user_name": h.store.UserName(),
	})
}

func (h *handler) notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Pending())
}

type clearNotificationsRequest struct {
	Kind string `json:"kind"`
}

// clearNotifications clears one slot by kind, or every slot when kind is
// "all". The presentation layer must call this after displaying a
// notification or the slot resurfaces on the next read.
func (h *handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	var req clearNotificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Kind == "all" {
		h.store.ClearAllPending()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !h.store.ClearPending(engine.NotificationKind(req.Kind)) {
		writeError(w, http.StatusBadRequest, "unknown notification kind: "+req.Kind)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
