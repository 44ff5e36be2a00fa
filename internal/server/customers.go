package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/tier"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// writeStoreError maps store failures onto response codes; it reports false
// for errors it does not know.
func writeStoreError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound):
		http.Error(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, errs.ErrTransactionNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.Is(err, errs.ErrTabNotOpen):
		http.Error(w, "tab is not open", http.StatusConflict)
	case errors.Is(err, errs.ErrDataFetch):
		http.Error(w, "reporting unavailable", http.StatusServiceUnavailable)
	default:
		return false
	}
	return true
}

func (srv *Server) customerAggregate(ctx context.Context, customerID uuid.UUID) (model.SpendAggregate, error) {
	rows, err := srv.storage.GetCustomerTransactions(ctx, customerID, model.TransactionFilter{})
	if err != nil {
		return model.SpendAggregate{}, err
	}

	agg, malformed := tier.AggregateRows(rows)
	if malformed > 0 {
		srv.deps.Logger.Warnw("malformed transactions coerced", "customer_id", customerID, "count", malformed)
	}
	return agg, nil
}

// recalculate runs the full tier pipeline for one customer. On a failed
// write the response carries the computed tier with Persisted=false together
// with an ErrPersistence error.
func (srv *Server) recalculate(ctx context.Context, customerID uuid.UUID) (model.TierResponse, error) {
	customer, err := srv.customers.Refresh(ctx, customerID)
	if err != nil {
		return model.TierResponse{}, err
	}

	agg, err := srv.customerAggregate(ctx, customerID)
	if err != nil {
		return model.TierResponse{}, err
	}

	computed := tier.Classify(agg.TotalSpend, srv.thresholds.get())

	resp := model.TierResponse{
		CustomerID: customerID,
		Tier:       customer.Tier,
		TotalSpend: agg.TotalSpend,
		Persisted:  true,
	}

	res, err := srv.writer.MaybeUpgrade(ctx, customerID, customer.Tier, computed, agg.TotalSpend)
	if err != nil {
		resp.Tier = computed
		resp.Persisted = false
		return resp, err
	}

	if res == tier.Upgraded {
		resp.Tier = computed
		resp.Upgraded = true
		srv.customers.Invalidate(customerID)
	}

	return resp, nil
}

func (srv *Server) CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	customer, err := srv.storage.CreateCustomer(r.Context(), name)
	if err != nil {
		srv.deps.Logger.Errorf("create customer: %v", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

func (srv *Server) GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := srv.customers.Get(r.Context(), id)
	if err != nil {
		if !writeStoreError(w, err) {
			http.Error(w, "failed to get customer", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (srv *Server) GetCustomerStatsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	customer, err := srv.customers.Get(r.Context(), id)
	if err != nil {
		if !writeStoreError(w, err) {
			http.Error(w, "failed to get customer", http.StatusInternalServerError)
		}
		return
	}

	agg, err := srv.customerAggregate(r.Context(), id)
	if err != nil {
		srv.deps.Logger.Errorf("customer stats: %v", err)
		if !writeStoreError(w, err) {
			http.Error(w, "failed to get stats", http.StatusInternalServerError)
		}
		return
	}

	thresholds := srv.thresholds.get()
	stats := model.CustomerStats{
		Customer:        customer,
		Aggregate:       agg,
		ComputedTier:    tier.Classify(agg.TotalSpend, thresholds),
		SpendToNextTier: tier.SpendToNextTier(agg.TotalSpend, thresholds),
		Thresholds:      thresholds,
	}

	writeJSON(w, http.StatusOK, stats)
}

func (srv *Server) RecalculateTierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	resp, err := srv.recalculate(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrPersistence) {
			writeJSON(w, http.StatusAccepted, resp)
			return
		}
		srv.deps.Logger.Errorf("recalculate tier: %v", err)
		if !writeStoreError(w, err) {
			http.Error(w, "failed to recalculate tier", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (srv *Server) recalculateAfterSale(ctx context.Context, customerID *uuid.UUID) {
	if customerID == nil {
		return
	}
	srv.customers.Invalidate(*customerID)

	if _, err := srv.recalculate(ctx, *customerID); err != nil {
		srv.deps.Logger.Warnf("recalculate tier for %s: %v", *customerID, err)
	}
}
