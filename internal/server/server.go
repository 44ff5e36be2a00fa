package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/and161185/posloyalty/internal/cache"
	"github.com/and161185/posloyalty/internal/config"
	"github.com/and161185/posloyalty/internal/deps"
	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/middleware"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/and161185/posloyalty/internal/notify"
	"github.com/and161185/posloyalty/internal/tier"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/and161185/posloyalty/internal/server Storage

type Storage interface {
	CreateUser(ctx context.Context, login, passwordHash string) error
	GetUserByLogin(ctx context.Context, login string) (model.User, string, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)

	CreateCustomer(ctx context.Context, name string) (model.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (model.Customer, error)
	CountNewCustomers(ctx context.Context, from, to time.Time) (int, error)

	GetCustomerTransactions(ctx context.Context, customerID uuid.UUID, filter model.TransactionFilter) ([]model.TransactionRow, error)
	GetTransactionsBetween(ctx context.Context, from, to time.Time) ([]model.TransactionRow, error)
	AddTransaction(ctx context.Context, tx model.TransactionRecord) (model.TransactionRecord, error)
	CloseTab(ctx context.Context, id uuid.UUID) (model.TransactionRow, error)

	GetTierThresholds(ctx context.Context) (model.TierThresholds, error)
	SaveTierThresholds(ctx context.Context, thresholds model.TierThresholds) error
	PersistTierUpgrade(ctx context.Context, customerID uuid.UUID, t model.Tier, totalSpend decimal.Decimal, updatedAt time.Time) error
}

type thresholdsHolder struct {
	mu sync.RWMutex
	v  model.TierThresholds
}

func (h *thresholdsHolder) get() model.TierThresholds {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.v
}

func (h *thresholdsHolder) set(t model.TierThresholds) {
	h.mu.Lock()
	h.v = t
	h.mu.Unlock()
}

type Server struct {
	storage    Storage
	config     *config.Config
	deps       *deps.Deps
	writer     *tier.Writer
	customers  *cache.Customers
	feed       *notify.Feed
	thresholds *thresholdsHolder
	now        func() time.Time
}

func NewServer(storage Storage, config *config.Config, deps *deps.Deps) *Server {
	feed := notify.NewFeed(deps.Logger, 0)

	return &Server{
		storage:    storage,
		config:     config,
		deps:       deps,
		writer:     tier.NewWriter(storage, feed, deps.Logger),
		customers:  cache.NewCustomers(storage, config.CustomerCacheTTL),
		feed:       feed,
		thresholds: &thresholdsHolder{v: tier.DefaultThresholds()},
		now:        time.Now,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Post("/api/user/register", srv.RegisterHandler)
	router.Post("/api/user/login", srv.LoginHandler)

	// авторизованные ручки
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.storage, srv.deps.TokenManager))

		r.Post("/api/customers", srv.CreateCustomerHandler)
		r.Get("/api/customers/{id}", srv.GetCustomerHandler)
		r.Get("/api/customers/{id}/stats", srv.GetCustomerStatsHandler)
		r.Post("/api/customers/{id}/tier", srv.RecalculateTierHandler)

		r.Post("/api/transactions", srv.AddTransactionHandler)
		r.Post("/api/transactions/{id}/close", srv.CloseTabHandler)

		r.Get("/api/reports/trends", srv.GetTrendsHandler)

		r.Get("/api/settings/tiers", srv.GetTierSettingsHandler)
		r.Put("/api/settings/tiers", srv.UpdateTierSettingsHandler)

		r.Get("/api/notifications", srv.GetNotificationsHandler)
	})

	return router
}

// LoadThresholds reads the stored tier thresholds once. A failed read keeps the defaults.
func (srv *Server) LoadThresholds(ctx context.Context) {
	t, err := srv.storage.GetTierThresholds(ctx)
	if err != nil {
		srv.deps.Logger.Warnf("load tier thresholds, using defaults: %v", err)
		return
	}
	srv.thresholds.set(t)
}

func (srv *Server) Run(ctx context.Context) error {
	srv.LoadThresholds(ctx)

	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go srv.TierReconcileControl(ctx)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (srv *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}

	err = srv.storage.CreateUser(r.Context(), creds.Login, string(hash))
	if err != nil {
		if errors.Is(err, errs.ErrLoginAlreadyExists) {
			http.Error(w, "login taken", http.StatusConflict)
			return
		}
		srv.deps.Logger.Errorf("create user: %v", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	user, _, err := srv.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		http.Error(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	token, err := srv.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	user, hash, err := srv.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := srv.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}
