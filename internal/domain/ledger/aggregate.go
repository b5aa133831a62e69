package ledger

import "github.com/tu-usuario/distribution-pos/internal/domain/entity"

// Aggregate suma bucket a bucket los records de un filtro (outlet/rango) y devuelve
// el record agregado. Sobre el agregado se aplica ComputeClosing directamente.
//
// El cierre NO distribuye sobre la suma: closing(Σ records) ≠ Σ closing(record)
// cuando los records tienen baselines de apertura distintos (la apertura del
// período N+1 no es necesariamente el cierre del período N). Nunca sumar cierres
// precalculados por record; siempre agregar buckets y cerrar el agregado.
//
// Un slice vacío devuelve todos los buckets en cero (no es error).
func Aggregate(records []entity.StockMovementRecord) entity.StockMovementRecord {
	var agg entity.StockMovementRecord
	for _, r := range records {
		agg.OpeningStock += r.OpeningStock
		agg.OpeningValueDP = agg.OpeningValueDP.Add(r.OpeningValueDP)
		agg.OpeningValueTP = agg.OpeningValueTP.Add(r.OpeningValueTP)

		agg.Primary += r.Primary
		agg.PrimaryValueDP = agg.PrimaryValueDP.Add(r.PrimaryValueDP)
		agg.PrimaryValueTP = agg.PrimaryValueTP.Add(r.PrimaryValueTP)

		agg.MarketReturn += r.MarketReturn
		agg.MarketReturnValueDP = agg.MarketReturnValueDP.Add(r.MarketReturnValueDP)
		agg.MarketReturnValueTP = agg.MarketReturnValueTP.Add(r.MarketReturnValueTP)

		agg.OfficeReturn += r.OfficeReturn
		agg.OfficeReturnValueDP = agg.OfficeReturnValueDP.Add(r.OfficeReturnValueDP)
		agg.OfficeReturnValueTP = agg.OfficeReturnValueTP.Add(r.OfficeReturnValueTP)

		agg.Secondary += r.Secondary
		agg.SecondaryValueDP = agg.SecondaryValueDP.Add(r.SecondaryValueDP)
		agg.SecondaryValueTP = agg.SecondaryValueTP.Add(r.SecondaryValueTP)
	}
	return agg
}
