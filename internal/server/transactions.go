package server

import (
	"encoding/json"
	"net/http"

	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/tier"
)

func (srv *Server) AddTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if req.Status == "" {
		req.Status = model.Completed
	}
	if !req.Status.Valid() || req.Total.IsNegative() {
		http.Error(w, "invalid input", http.StatusUnprocessableEntity)
		return
	}
	for _, item := range req.Items {
		if item.Quantity < 0 || item.Price.IsNegative() {
			http.Error(w, "invalid item", http.StatusUnprocessableEntity)
			return
		}
	}

	tx, err := srv.storage.AddTransaction(r.Context(), model.TransactionRecord{
		CustomerID: req.CustomerID,
		Total:      req.Total,
		Status:     req.Status,
		Items:      req.Items,
	})
	if err != nil {
		if !writeStoreError(w, err) {
			srv.deps.Logger.Errorf("add transaction: %v", err)
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}

	srv.recalculateAfterSale(r.Context(), tx.CustomerID)

	writeJSON(w, http.StatusCreated, tx)
}

func (srv *Server) CloseTabHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	row, err := srv.storage.CloseTab(r.Context(), id)
	if err != nil {
		if !writeStoreError(w, err) {
			srv.deps.Logger.Errorf("close tab: %v", err)
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}

	records, malformed := tier.Decode([]model.TransactionRow{row})
	if malformed > 0 {
		srv.deps.Logger.Warnw("malformed transaction coerced", "transaction_id", row.ID)
	}

	srv.recalculateAfterSale(r.Context(), row.CustomerID)

	writeJSON(w, http.StatusOK, records[0])
}
