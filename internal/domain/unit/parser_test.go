package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

func TestParseQuantity_Patrones(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		value   float64
		unit    string
		success bool
	}{
		// 1. Fracción con barra
		{"media pieza", "1/2個", 0.5, "個", true},
		{"un tercio", "1/3本", 1.0 / 3.0, "本", true},
		{"fracción sin unidad", "3/4", 0.75, "", true},

		// 2. N y medio
		{"uno y medio", "1個半", 1.5, "個", true},
		{"dos y medio cucharadas", "2大さじ半", 2.5, "大さじ", true},

		// 3. Prefijo 半
		{"mitad sola", "半分", 0.5, "", true},
		{"medio bloque", "半丁", 0.5, "丁", true},
		{"media taza", "半カップ", 0.5, "カップ", true},

		// 4. Decimal
		{"decimal con unidad", "1.5カップ", 1.5, "カップ", true},
		{"decimal gramos", "0.5g", 0.5, "g", true},

		// 5. Entero
		{"entero ml", "200ml", 200, "ml", true},
		{"entero ancho completo", "２００ｍｌ", 200, "ml", true},
		{"entero sin unidad", "3", 3, "", true},

		// 6. Sin prefijo numérico: unidad sola implica 1
		{"unidad sola", "大さじ", 1, "大さじ", true},
		{"vago", "適量", 1, "適量", true},

		// 7. Vacío
		{"vacío", "", 0, "", false},
		{"solo espacios", "   ", 0, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := unit.ParseQuantity(tc.raw)
			assert.Equal(t, tc.success, got.Success)
			assert.InDelta(t, tc.value, got.Value, 1e-9)
			assert.Equal(t, tc.unit, got.Unit)
		})
	}
}

// TestParseQuantity_FraccionDenominadorCero "1/0個" no puede ser fracción;
// cae al patrón de entero y produce 1 con el resto como unidad.
func TestParseQuantity_FraccionDenominadorCero(t *testing.T) {
	got := unit.ParseQuantity("1/0個")
	assert.True(t, got.Success)
	assert.Equal(t, 1.0, got.Value)
	assert.Equal(t, "/0個", got.Unit)
}

// TestParseQuantity_OrdenDeDesempate "1/2" jamás debe interpretarse como
// entero 1 con unidad basura "/2".
func TestParseQuantity_OrdenDeDesempate(t *testing.T) {
	got := unit.ParseQuantity("1/2")
	assert.Equal(t, 0.5, got.Value)
	assert.Equal(t, "", got.Unit)
}
