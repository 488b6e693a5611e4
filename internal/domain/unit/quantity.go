package unit

// Quantity un valor numérico con su unidad normalizada.
type Quantity struct {
	Value float64
	Unit  NormalizedUnit
}

// NewQuantity construye una cantidad normalizando la unidad cruda.
func NewQuantity(value float64, rawUnit string) Quantity {
	return Quantity{Value: value, Unit: Normalize(rawUnit)}
}

// Base devuelve el valor expresado en la unidad base de la categoría
// (g para masa, ml para volumen/cucharada, la propia unidad para conteo).
// ok=false para categorías imprecisas o desconocidas.
func (q Quantity) Base() (value float64, baseUnit string, ok bool) {
	switch q.Unit.Category {
	case CategoryMass, CategoryVolume, CategorySpoon:
		mult, found := baseMultiplier(q.Unit.Canonical)
		if !found {
			return 0, "", false
		}
		return q.Value * mult, BaseUnitOf(q.Unit.Category), true
	case CategoryCount:
		return q.Value, q.Unit.Canonical, true
	default:
		return 0, "", false
	}
}
