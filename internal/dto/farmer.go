package dto

// CreateFarmerRequest carries the data for registering a farmer.
type CreateFarmerRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	ContactNumber string `json:"contactNumber" binding:"omitempty,max=32"`
	Location      string `json:"location" binding:"omitempty,max=255"`
}

// UpdateFarmerRequest carries a partial farmer update; nil fields are left
// unchanged.
type UpdateFarmerRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=255"`
	ContactNumber *string `json:"contactNumber" binding:"omitempty,max=32"`
	Location      *string `json:"location" binding:"omitempty,max=255"`
}
