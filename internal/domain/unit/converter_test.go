package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// ──────────────────────────────────────────────────────────────────────────────
// Conversión dentro de la misma familia
// ──────────────────────────────────────────────────────────────────────────────

func TestConvert_MismaFamilia(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"cucharada a ml", 1, "大さじ", "ml", 15},
		{"dos cucharadas a ml", 2, "大さじ", "ml", 30},
		{"cucharadita a ml", 1, "小さじ", "ml", 5},
		{"cucharada a cucharadita", 1, "大さじ", "小さじ", 3},
		{"kg a g", 1.5, "kg", "g", 1500},
		{"g a kg", 500, "g", "kg", 0.5},
		{"L a ml", 1, "L", "ml", 1000},
		{"taza a ml", 1, "カップ", "ml", 200},
		{"go de arroz a ml", 1, "合", "ml", 180},
		{"alias en el origen", 100, "グラム", "g", 100},
		{"misma canónica", 42, "ml", "cc", 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := unit.Convert(tc.value, tc.from, tc.to)
			require.True(t, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvert_NuncaConvertibles(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
	}{
		{"masa a volumen sin ingrediente", "g", "ml"},
		{"conteo a masa", "個", "g"},
		{"conteo a conteo distinto", "本", "個"},
		{"impreciso a volumen", "少々", "ml"},
		{"desconocida a masa", "箱", "g"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := unit.Convert(1, tc.from, tc.to)
			assert.False(t, ok)
		})
	}
}

// TestConvert_IdaYVuelta propiedad: convertir y deshacer recupera el valor
// original dentro de tolerancia flotante.
func TestConvert_IdaYVuelta(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"g", "kg"}, {"mg", "g"}, {"ml", "L"},
		{"大さじ", "ml"}, {"小さじ", "大さじ"}, {"カップ", "ml"},
	}
	for _, p := range pairs {
		for _, v := range []float64{0.5, 1, 3, 250} {
			there, ok := unit.Convert(v, p.a, p.b)
			require.True(t, ok, "%s -> %s", p.a, p.b)
			back, ok := unit.Convert(there, p.b, p.a)
			require.True(t, ok, "%s -> %s", p.b, p.a)
			assert.InDelta(t, v, back, 1e-9, "ida y vuelta %s<->%s con %v", p.a, p.b, v)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Puente de densidad masa<->volumen
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertBetweenMassAndVolume_Densidades(t *testing.T) {
	// 醤油: 1.15 g/ml -> 100 ml pesan 115 g.
	got, ok := unit.ConvertBetweenMassAndVolume(100, "ml", "g", "醤油")
	require.True(t, ok)
	assert.InDelta(t, 115, got, 1e-9)

	// Sentido inverso: 115 g de soja son 100 ml.
	got, ok = unit.ConvertBetweenMassAndVolume(115, "g", "ml", "醤油")
	require.True(t, ok)
	assert.InDelta(t, 100, got, 1e-9)

	// Cucharada de soja: 15 ml * 1.15 = 17.25 g.
	got, ok = unit.Convert(1, "大さじ", "g", "醤油")
	require.True(t, ok)
	assert.InDelta(t, 17.25, got, 1e-9)

	// Alias del ingrediente en la tabla de densidades.
	got, ok = unit.Convert(100, "ml", "g", "しょうゆ")
	require.True(t, ok)
	assert.InDelta(t, 115, got, 1e-9)
}

func TestConvertBetweenMassAndVolume_DensidadDesconocida(t *testing.T) {
	_, ok := unit.ConvertBetweenMassAndVolume(100, "ml", "g", "謎の食材")
	assert.False(t, ok)

	// Ingrediente vacío tampoco habilita el cruce.
	_, ok = unit.Convert(100, "ml", "g", "")
	assert.False(t, ok)
}

func TestCanConvert(t *testing.T) {
	assert.False(t, unit.CanConvert("g", "ml"), "masa-volumen sin ingrediente no es convertible")
	assert.True(t, unit.CanConvert("g", "ml", "醤油"), "con densidad conocida sí")
	assert.True(t, unit.CanConvert("大さじ", "ml"))
	assert.True(t, unit.CanConvert("kg", "g"))
	assert.False(t, unit.CanConvert("個", "g", "醤油"), "conteo nunca es convertible")
	assert.False(t, unit.CanConvert("本", "ml", "牛乳"))
}

func TestLookupDensity_PrimerAciertoEnOrdenDeTabla(t *testing.T) {
	// "醤油" contiene "油" pero la entrada específica va antes en la tabla.
	d, ok := unit.LookupDensity("醤油")
	require.True(t, ok)
	assert.InDelta(t, 1.15, d, 1e-9)

	d, ok = unit.LookupDensity("サラダ油")
	require.True(t, ok)
	assert.InDelta(t, 0.92, d, 1e-9)
}
