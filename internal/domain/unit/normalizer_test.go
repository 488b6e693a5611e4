package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalizador: tabla de alias, categorías e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_AliasYCategoria(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		canonical string
		category  unit.Category
	}{
		{"gramo katakana", "グラム", "g", unit.CategoryMass},
		{"gramo ancho completo", "ｇ", "g", unit.CategoryMass},
		{"gramo mayúscula", "G", "g", unit.CategoryMass},
		{"kilo", "キログラム", "kg", unit.CategoryMass},
		{"mililitro katakana", "ミリリットル", "ml", unit.CategoryVolume},
		{"cc", "cc", "ml", unit.CategoryVolume},
		{"litro minúscula", "l", "L", unit.CategoryVolume},
		{"taza japonesa", "カップ", "カップ", unit.CategoryVolume},
		{"cucharada kanji", "大匙", "大さじ", unit.CategorySpoon},
		{"cucharadita", "小さじ", "小さじ", unit.CategorySpoon},
		{"pieza", "個", "個", unit.CategoryCount},
		{"pieza katakana", "コ", "個", unit.CategoryCount},
		{"botella", "本", "本", unit.CategoryCount},
		{"bloque tofu", "丁", "丁", unit.CategoryCount},
		{"pizca", "少々", "少々", unit.CategoryImprecise},
		{"al gusto", "適量", "適量", unit.CategoryImprecise},
		{"con espacios", "  g  ", "g", unit.CategoryMass},
		{"desconocida queda intacta", "箱", "箱", unit.CategoryUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := unit.Normalize(tc.raw)
			assert.Equal(t, tc.canonical, got.Canonical)
			assert.Equal(t, tc.category, got.Category)
			assert.Equal(t, tc.raw, got.Original, "Original debe conservar la entrada cruda")
		})
	}
}

func TestNormalize_EntradaVacia(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		got := unit.Normalize(raw)
		assert.Equal(t, "", got.Canonical)
		assert.Equal(t, unit.CategoryUnknown, got.Category)
	}
}

// TestNormalize_Idempotente propiedad del contrato: normalizar la canónica de
// cualquier unidad devuelve el mismo resultado que normalizar la original.
func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"g", "グラム", "ｇ", "kg", "キロ", "mg",
		"ml", "cc", "ミリリットル", "L", "リットル", "l", "カップ", "cup", "合",
		"大さじ", "大匙", "tbsp", "小さじ", "tsp",
		"個", "コ", "本", "枚", "袋", "丁", "束", "玉", "片",
		"少々", "少量", "適量", "適宜", "ひとつまみ", "お好みで",
		"箱", "ダース", "",
	}
	for _, raw := range inputs {
		first := unit.Normalize(raw)
		second := unit.Normalize(first.Canonical)
		require.Equal(t, first.Canonical, second.Canonical, "canónica estable para %q", raw)
		require.Equal(t, first.Category, second.Category, "categoría estable para %q", raw)
	}
}

// TestNormalize_Pura mismo input, mismo output.
func TestNormalize_Pura(t *testing.T) {
	a := unit.Normalize("大さじ")
	b := unit.Normalize("大さじ")
	assert.Equal(t, a, b)
}
