package unit

import "fmt"

// Measured una cantidad medida con la unidad cruda y el nombre del alimento
// (el nombre habilita el puente de densidad en comparaciones cruzadas).
type Measured struct {
	Value float64
	Unit  string
	Name  string
}

// ComparisonResult resultado de comparar despensa contra requerido.
// CanCompare=false implica que IsEnough no significa nada y el caller debe
// ignorarlo. Shortage/ShortageUnit solo se rellenan cuando falta cantidad.
type ComparisonResult struct {
	CanCompare   bool
	IsEnough     bool
	Shortage     float64
	ShortageUnit string
	Reason       string
}

// Compare decide si la cantidad en despensa satisface la requerida.
// Orden de decisión (cada paso corta):
//
//  1. Despensa <= 0: no comparable.
//  2. Requerido <= 0: suficiente trivialmente.
//  3. Unidad de despensa imprecisa ("少々"): no comparable.
//  4. Unidad requerida imprecisa: suficiente con cualquier stock positivo.
//  5. Alguna categoría desconocida: no comparable.
//  6. Canónicas iguales: comparación numérica directa.
//  7. Si no, intentar conversión; imposible -> no comparable con motivo.
//
// Función total: toda combinación de categorías tiene resultado definido y
// nunca lanza error.
func Compare(inventory, required Measured) ComparisonResult {
	if inventory.Value <= 0 {
		return ComparisonResult{CanCompare: false, Reason: "cantidad en despensa no positiva"}
	}
	if required.Value <= 0 {
		return ComparisonResult{CanCompare: true, IsEnough: true}
	}

	inv := Normalize(inventory.Unit)
	req := Normalize(required.Unit)

	if inv.Category == CategoryImprecise {
		return ComparisonResult{CanCompare: false, Reason: "cantidad en despensa imprecisa"}
	}
	if req.Category == CategoryImprecise {
		// Un requisito vago ("適量") se satisface con cualquier stock positivo.
		return ComparisonResult{CanCompare: true, IsEnough: true}
	}
	if inv.Category == CategoryUnknown || req.Category == CategoryUnknown {
		return ComparisonResult{CanCompare: false, Reason: "unidad desconocida"}
	}

	if inv.Canonical == req.Canonical {
		return compareSameUnit(inventory.Value, required.Value, req.Canonical)
	}

	ingredient := required.Name
	if ingredient == "" {
		ingredient = inventory.Name
	}
	if !CanConvert(inventory.Unit, required.Unit, ingredient) {
		return ComparisonResult{
			CanCompare: false,
			Reason:     fmt.Sprintf("unidades no comparables: %s y %s", inv.Canonical, req.Canonical),
		}
	}
	converted, _ := Convert(inventory.Value, inventory.Unit, required.Unit, ingredient)
	return compareSameUnit(converted, required.Value, req.Canonical)
}

// compareSameUnit compara dos valores ya en la misma unidad; el faltante se
// reporta en esa unidad.
func compareSameUnit(inventoryValue, requiredValue float64, canonical string) ComparisonResult {
	if inventoryValue >= requiredValue {
		return ComparisonResult{CanCompare: true, IsEnough: true}
	}
	return ComparisonResult{
		CanCompare:   true,
		IsEnough:     false,
		Shortage:     requiredValue - inventoryValue,
		ShortageUnit: canonical,
	}
}
