package domain

import "github.com/shopspring/decimal"

// InventorySummary is the stock position derived from poultry transactions:
// remaining stock = purchased - sold. It is recomputed on every query, never
// stored.
type InventorySummary struct {
	TotalPurchased decimal.Decimal `json:"totalPurchased"`
	TotalSold      decimal.Decimal `json:"totalSold"`
	RemainingStock decimal.Decimal `json:"remainingStock"`
}

// FarmerInventory is the per-farmer stock position.
type FarmerInventory struct {
	FarmerID   int64  `json:"farmerID"`
	FarmerName string `json:"farmerName,omitempty"`
	InventorySummary
}
