package unit

// Category clasifica una unidad canónica. Toda unidad canónica pertenece
// exactamente a una categoría; las no reconocidas quedan en CategoryUnknown.
type Category string

const (
	// CategoryMass unidades de masa (base: gramo).
	CategoryMass Category = "mass"
	// CategoryVolume unidades de volumen (base: mililitro).
	CategoryVolume Category = "volume"
	// CategorySpoon cucharadas (大さじ/小さじ). Convertibles con volumen en ambos
	// sentidos, pero separadas porque su constante base no es la del litro.
	CategorySpoon Category = "spoon"
	// CategoryCount unidades de conteo (個, 本, 枚...). Nunca convertibles a masa
	// ni volumen: una "pieza" no tiene masa universal.
	CategoryCount Category = "count"
	// CategoryImprecise cantidades vagas (少々, 適量). No cuantificables.
	CategoryImprecise Category = "imprecise"
	// CategoryUnknown unidad vacía o no reconocida.
	CategoryUnknown Category = "unknown"
)

// CountUnitDefault unidad de conteo por defecto cuando el registro de despensa
// no trae unidad ("pieza").
const CountUnitDefault = "個"

// categoryTable mapea unidad canónica -> categoría. Inmutable tras el init.
var categoryTable = map[string]Category{
	// Masa
	"mg": CategoryMass,
	"g":  CategoryMass,
	"kg": CategoryMass,

	// Volumen
	"ml":  CategoryVolume,
	"L":   CategoryVolume,
	"カップ": CategoryVolume,
	"合":   CategoryVolume,

	// Cucharadas
	"大さじ": CategorySpoon,
	"小さじ": CategorySpoon,

	// Conteo
	"個":   CategoryCount,
	"本":   CategoryCount,
	"枚":   CategoryCount,
	"袋":   CategoryCount,
	"パック": CategoryCount,
	"缶":   CategoryCount,
	"丁":   CategoryCount,
	"束":   CategoryCount,
	"玉":   CategoryCount,
	"片":   CategoryCount,
	"株":   CategoryCount,
	"尾":   CategoryCount,
	"切れ":  CategoryCount,
	"かけ":  CategoryCount,
	"人前":  CategoryCount,
	"房":   CategoryCount,

	// Impreciso
	"少々":    CategoryImprecise,
	"適量":    CategoryImprecise,
	"ひとつまみ": CategoryImprecise,
	"お好みで":  CategoryImprecise,
}

// baseMultipliers mapea unidad canónica -> factor hacia la unidad base de su
// categoría (g para masa; ml para volumen y cucharadas). Las unidades de conteo
// e imprecisas no tienen conversión a base.
var baseMultipliers = map[string]float64{
	// Masa (base: g)
	"mg": 0.001,
	"g":  1,
	"kg": 1000,

	// Volumen (base: ml). カップ japonesa = 200 ml; 合 (arroz) = 180 ml.
	"ml":  1,
	"L":   1000,
	"カップ": 200,
	"合":   180,

	// Cucharadas (base: ml)
	"大さじ": 15,
	"小さじ": 5,
}

// CategoryOf devuelve la categoría de una unidad canónica.
func CategoryOf(canonical string) Category {
	if canonical == "" {
		return CategoryUnknown
	}
	if cat, ok := categoryTable[canonical]; ok {
		return cat
	}
	return CategoryUnknown
}

// baseMultiplier devuelve el factor hacia la unidad base, ok=false si no existe.
func baseMultiplier(canonical string) (float64, bool) {
	m, ok := baseMultipliers[canonical]
	return m, ok
}

// BaseUnitOf devuelve la unidad base de una categoría ("" si no tiene).
func BaseUnitOf(cat Category) string {
	switch cat {
	case CategoryMass:
		return "g"
	case CategoryVolume, CategorySpoon:
		return "ml"
	default:
		return ""
	}
}
