package domain

import "time"

// PoultryTransactionFilter narrows transaction listings. Nil fields match
// everything.
type PoultryTransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *PoultryTransactionType
	FarmerID *int64
}
