package errs

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrLoginAlreadyExists = errors.New("login already exists")

var ErrCustomerNotFound = errors.New("customer not found")
var ErrTransactionNotFound = errors.New("transaction not found")
var ErrTabNotOpen = errors.New("transaction is not an open tab")
var ErrInvalidThresholds = errors.New("invalid tier thresholds")

// ErrDataFetch wraps every failed read from the store.
var ErrDataFetch = errors.New("data fetch failed")

// ErrPersistence wraps a failed tier upgrade write. The upgrade stays pending until retried.
var ErrPersistence = errors.New("tier upgrade not persisted")
