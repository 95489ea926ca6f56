package mapping

import (
	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
	"github.com/kmalkov/cbr_rates_app/internal/models"
)

// ToModelRate converts a domain.Rate to its database model.
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		ID:        d.ID,
		NumCode:   d.NumCode,
		CharCode:  d.CharCode,
		Nominal:   d.Nominal,
		Name:      d.Name,
		Value:     d.Value,
		VUnitRate: d.VUnitRate,
		Date:      d.Date,
	}
}

// ToDomainRate converts a database model back to a domain.Rate.
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		ID:        m.ID,
		NumCode:   m.NumCode,
		CharCode:  m.CharCode,
		Nominal:   m.Nominal,
		Name:      m.Name,
		Value:     m.Value,
		VUnitRate: m.VUnitRate,
		Date:      m.Date,
	}
}

// ToDomainRates converts a slice of database models.
func ToDomainRates(ms []models.Rate) []domain.Rate {
	rates := make([]domain.Rate, len(ms))
	for i, m := range ms {
		rates[i] = ToDomainRate(m)
	}
	return rates
}
