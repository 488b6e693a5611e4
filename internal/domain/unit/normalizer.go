package unit

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizedUnit es la forma canónica de una unidad libre de texto.
// Derivada e inmutable; se recalcula bajo demanda y nunca se persiste.
type NormalizedUnit struct {
	Original  string
	Canonical string
	Category  Category
}

// aliasTable mapea variantes ortográficas (kana, rōmaji, ancho completo ya
// plegado) -> unidad canónica. Inmutable tras el init.
var aliasTable = map[string]string{
	// Masa
	"グラム":   "g",
	"ぐらむ":   "g",
	"G":     "g",
	"gram":  "g",
	"キロ":    "kg",
	"キログラム": "kg",
	"Kg":    "kg",
	"KG":    "kg",

	// Volumen
	"ミリリットル": "ml",
	"mL":     "ml",
	"ML":     "ml",
	"cc":     "ml",
	"CC":     "ml",
	"リットル":   "L",
	"l":      "L",
	"ℓ":      "L",
	"cup":    "カップ",
	"Cup":    "カップ",

	// Cucharadas
	"大匙":   "大さじ",
	"おおさじ": "大さじ",
	"tbsp": "大さじ",
	"小匙":   "小さじ",
	"こさじ":  "小さじ",
	"tsp":  "小さじ",

	// Conteo
	"コ":     "個",
	"ケ":     "個",
	"こ":     "個",
	"つ":     "個",
	"piece": "個",
	"pcs":   "個",
	"ほん":    "本",
	"まい":    "枚",
	"pack":  "パック",

	// Impreciso
	"少量":   "少々",
	"しょうしょう": "少々",
	"適宜":   "適量",
	"お好み":  "お好みで",
	"つまみ":  "ひとつまみ",
	"一つまみ": "ひとつまみ",
}

// Normalize convierte un token de unidad en su forma canónica con categoría.
// Función pura: el mismo input produce siempre el mismo output, y normalizar
// una unidad ya canónica la devuelve intacta (idempotente).
//
// Entrada vacía o solo espacios -> categoría Unknown con canónica "".
// Token no reconocido -> la canónica es el propio token plegado/recortado.
func Normalize(raw string) NormalizedUnit {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NormalizedUnit{Original: raw, Canonical: "", Category: CategoryUnknown}
	}

	// Plegado de ancho: "ｇ" -> "g", "ｶｯﾌﾟ" -> "カップ". Cubre las variantes de
	// script sin duplicar cada alias en ancho completo.
	folded := width.Fold.String(trimmed)

	canonical := folded
	if alias, ok := aliasTable[folded]; ok {
		canonical = alias
	}

	return NormalizedUnit{
		Original:  raw,
		Canonical: canonical,
		Category:  CategoryOf(canonical),
	}
}
