package dto

// PaymentSummaryParams narrows the payment summary report.
type PaymentSummaryParams struct {
	FarmerID int64  `form:"farmerID"`
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}
