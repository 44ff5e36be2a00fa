package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/report"
	"github.com/and161185/posloyalty/internal/tier"
)

func (srv *Server) snapshot(ctx context.Context, window report.Window) (report.Snapshot, error) {
	rows, err := srv.storage.GetTransactionsBetween(ctx, window.From, window.To)
	if err != nil {
		return report.Snapshot{}, err
	}

	records, malformed := tier.Decode(rows)
	if malformed > 0 {
		srv.deps.Logger.Warnw("malformed transactions coerced", "from", window.From, "to", window.To, "count", malformed)
	}

	newCustomers, err := srv.storage.CountNewCustomers(ctx, window.From, window.To)
	if err != nil {
		return report.Snapshot{}, err
	}

	return report.Summarize(records, newCustomers), nil
}

func (srv *Server) GetTrendsHandler(w http.ResponseWriter, r *http.Request) {
	period, err := report.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	currentWindow, priorWindow := report.Windows(period, srv.now())

	current, err := srv.snapshot(r.Context(), currentWindow)
	if err != nil {
		srv.deps.Logger.Errorf("current period snapshot: %v", err)
		if !writeStoreError(w, err) {
			http.Error(w, "failed to build report", http.StatusInternalServerError)
		}
		return
	}

	prior, err := srv.snapshot(r.Context(), priorWindow)
	if err != nil {
		srv.deps.Logger.Errorf("prior period snapshot: %v", err)
		if !writeStoreError(w, err) {
			http.Error(w, "failed to build report", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, report.Compare(period, current, prior))
}

func (srv *Server) GetTierSettingsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, srv.thresholds.get())
}

func (srv *Server) UpdateTierSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var thresholds model.TierThresholds
	if err := json.NewDecoder(r.Body).Decode(&thresholds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := tier.ValidateThresholds(thresholds); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := srv.storage.SaveTierThresholds(r.Context(), thresholds); err != nil {
		if errors.Is(err, errs.ErrInvalidThresholds) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		srv.deps.Logger.Errorf("save tier thresholds: %v", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	srv.thresholds.set(thresholds)

	writeJSON(w, http.StatusOK, thresholds)
}

func (srv *Server) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	notifications := srv.feed.Recent(limit)
	if len(notifications) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}
