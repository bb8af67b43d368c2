package domain

import "time"

// Farmer is a trading counterparty the business buys from or sells to.
// A farmer cannot be deleted while any poultry transaction references it.
type Farmer struct {
	FarmerID      int64     `json:"farmerID"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
