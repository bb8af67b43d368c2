package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("permission denied")

// ErrInsufficientFunds indicates a transfer would overdraw the sender's balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrHasDependentTransactions indicates a farmer is still referenced by poultry transactions.
var ErrHasDependentTransactions = errors.New("farmer has dependent transactions")

// ErrCannotDeleteAdmin indicates an attempt to delete a user with the admin role.
var ErrCannotDeleteAdmin = errors.New("cannot delete admin user")

// ErrOverPayment indicates a payment would push the paid amount past the transaction total.
var ErrOverPayment = errors.New("payment exceeds transaction total")
