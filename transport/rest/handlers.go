package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

const defaultArchiveLimit = 20

// newArchiveHandler - serves recently finished games from the archive.
func newArchiveHandler(logger *slog.Logger, archive archiveRepo) http.HandlerFunc {
	log := logger.With("handler", "archive")

	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultArchiveLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		games, err := archive.ListRecent(r.Context(), limit)
		if err != nil {
			log.Error("failed to list archived games", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(games); err != nil {
			log.Error("failed to encode archived games", "error", err)
		}
	}
}
