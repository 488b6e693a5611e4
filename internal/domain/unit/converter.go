package unit

// Convert convierte un valor numérico de una unidad a otra.
// ingredientName es opcional y solo se usa para el puente de densidad
// masa<->volumen; sin él esa conversión no se intenta.
//
// Devuelve ok=false cuando la conversión es imposible: categorías de conteo,
// imprecisas o desconocidas nunca son convertibles (una "pieza" no tiene masa
// ni volumen universal).
func Convert(value float64, fromUnit, toUnit string, ingredientName ...string) (float64, bool) {
	from := Normalize(fromUnit)
	to := Normalize(toUnit)

	if from.Canonical == to.Canonical {
		return value, true
	}

	// Misma categoría (o cucharada<->volumen): vía la unidad base.
	if sameConvertibleCategory(from.Category, to.Category) {
		return convertViaBase(value, from, to)
	}

	// Cruce masa<->volumen: requiere nombre de ingrediente para la densidad.
	if len(ingredientName) > 0 && ingredientName[0] != "" && isMassVolumeCross(from.Category, to.Category) {
		return ConvertBetweenMassAndVolume(value, fromUnit, toUnit, ingredientName[0])
	}

	return 0, false
}

// CanConvert replica la lógica de Convert sin producir valor. Útil para
// comprobar viabilidad antes de intentar un consumo.
func CanConvert(fromUnit, toUnit string, ingredientName ...string) bool {
	_, ok := Convert(1, fromUnit, toUnit, ingredientName...)
	return ok
}

// ConvertBetweenMassAndVolume cruza masa<->volumen usando la densidad (g/ml)
// del ingrediente: origen -> base (g o ml) -> densidad -> base destino ->
// unidad destino. ok=false si la densidad es desconocida o falta algún
// multiplicador.
func ConvertBetweenMassAndVolume(value float64, fromUnit, toUnit, ingredientName string) (float64, bool) {
	from := Normalize(fromUnit)
	to := Normalize(toUnit)

	if !isMassVolumeCross(from.Category, to.Category) {
		return 0, false
	}
	density, ok := LookupDensity(ingredientName)
	if !ok || density <= 0 {
		return 0, false
	}
	base, _, ok := (Quantity{Value: value, Unit: from}).Base() // g o ml según el origen
	if !ok {
		return 0, false
	}
	toMult, ok := baseMultiplier(to.Canonical)
	if !ok {
		return 0, false
	}

	var crossed float64
	if from.Category == CategoryMass {
		// g -> ml
		crossed = base / density
	} else {
		// ml -> g
		crossed = base * density
	}
	return crossed / toMult, true
}

// convertViaBase convierte dentro de una misma familia pasando por la unidad
// base de la categoría (Quantity.Base).
func convertViaBase(value float64, from, to NormalizedUnit) (float64, bool) {
	base, _, ok := (Quantity{Value: value, Unit: from}).Base()
	if !ok {
		return 0, false
	}
	toMult, ok := baseMultiplier(to.Canonical)
	if !ok {
		return 0, false
	}
	return base / toMult, true
}

// sameConvertibleCategory indica si dos categorías convierten con simple
// multiplicador: masa-masa, y cualquier combinación volumen/cucharada.
func sameConvertibleCategory(a, b Category) bool {
	if a == CategoryMass && b == CategoryMass {
		return true
	}
	aVol := a == CategoryVolume || a == CategorySpoon
	bVol := b == CategoryVolume || b == CategorySpoon
	return aVol && bVol
}

// isMassVolumeCross indica si el par de categorías es un cruce masa<->volumen
// (incluyendo cucharadas como volumen).
func isMassVolumeCross(a, b Category) bool {
	aVol := a == CategoryVolume || a == CategorySpoon
	bVol := b == CategoryVolume || b == CategorySpoon
	return (a == CategoryMass && bVol) || (aVol && b == CategoryMass)
}
