package composer

import (
	"siap-spj-backend/internal/model"

	"github.com/shopspring/decimal"
)

// ComputeTotal = Σ tarif transport + Σ tarif penginapan + Σ komponen + representasi.
// Tarif penginapan sudah total per baris, tidak dikali jumlah hari.
func ComputeTotal(p *model.SpjPayload) decimal.Decimal {
	total := p.Komponen.Sum().Add(p.BasicInfo.Representasi)
	for _, t := range p.TransportDetails {
		total = total.Add(t.Tarif)
	}
	for _, h := range p.PenginapanDetails {
		total = total.Add(h.Tarif)
	}
	return total
}
