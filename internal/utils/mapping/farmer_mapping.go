package mapping

import (
	"database/sql"

	"github.com/poultrybooks/poultry_books_app/internal/core/domain"
	"github.com/poultrybooks/poultry_books_app/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelFarmer converts a domain Farmer to a model Farmer
func ToModelFarmer(d domain.Farmer) models.Farmer {
	return models.Farmer{
		FarmerID:      d.FarmerID,
		Name:          d.Name,
		ContactNumber: nullString(d.ContactNumber),
		Location:      nullString(d.Location),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainFarmer converts a model Farmer to a domain Farmer
func ToDomainFarmer(m models.Farmer) domain.Farmer {
	return domain.Farmer{
		FarmerID:      m.FarmerID,
		Name:          m.Name,
		ContactNumber: m.ContactNumber.String,
		Location:      m.Location.String,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainFarmerSlice converts a slice of model Farmers to domain Farmers
func ToDomainFarmerSlice(ms []models.Farmer) []domain.Farmer {
	ds := make([]domain.Farmer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFarmer(m)
	}
	return ds
}
