package unit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

func TestCompare_CasosBasicos(t *testing.T) {
	// Suficiente: 500 g en despensa contra 200 g requeridos.
	res := unit.Compare(
		unit.Measured{Value: 500, Unit: "g", Name: "豚肉"},
		unit.Measured{Value: 200, Unit: "g", Name: "豚肉"},
	)
	require.True(t, res.CanCompare)
	assert.True(t, res.IsEnough)

	// Insuficiente: faltan 100 g, reportados en la unidad requerida.
	res = unit.Compare(
		unit.Measured{Value: 100, Unit: "g", Name: "豚肉"},
		unit.Measured{Value: 200, Unit: "g", Name: "豚肉"},
	)
	require.True(t, res.CanCompare)
	assert.False(t, res.IsEnough)
	assert.InDelta(t, 100, res.Shortage, 1e-9)
	assert.Equal(t, "g", res.ShortageUnit)
}

func TestCompare_OrdenDeDecision(t *testing.T) {
	t.Run("despensa no positiva corta primero", func(t *testing.T) {
		res := unit.Compare(
			unit.Measured{Value: 0, Unit: "g"},
			unit.Measured{Value: 100, Unit: "g"},
		)
		assert.False(t, res.CanCompare)
		assert.NotEmpty(t, res.Reason)
	})

	t.Run("requerido cero o negativo es trivialmente suficiente", func(t *testing.T) {
		res := unit.Compare(
			unit.Measured{Value: 10, Unit: "g"},
			unit.Measured{Value: 0, Unit: "g"},
		)
		require.True(t, res.CanCompare)
		assert.True(t, res.IsEnough)
	})

	t.Run("despensa imprecisa no es comparable", func(t *testing.T) {
		res := unit.Compare(
			unit.Measured{Value: 1, Unit: "少々"},
			unit.Measured{Value: 100, Unit: "g"},
		)
		assert.False(t, res.CanCompare)
	})

	t.Run("requerido impreciso se satisface con stock positivo", func(t *testing.T) {
		res := unit.Compare(
			unit.Measured{Value: 30, Unit: "g", Name: "塩"},
			unit.Measured{Value: 1, Unit: "適量", Name: "塩"},
		)
		require.True(t, res.CanCompare)
		assert.True(t, res.IsEnough)
	})

	t.Run("categoría desconocida no es comparable", func(t *testing.T) {
		res := unit.Compare(
			unit.Measured{Value: 1, Unit: "箱"},
			unit.Measured{Value: 100, Unit: "g"},
		)
		assert.False(t, res.CanCompare)
	})
}

func TestCompare_ConConversion(t *testing.T) {
	// 1 L en despensa contra 200 ml requeridos.
	res := unit.Compare(
		unit.Measured{Value: 1, Unit: "L", Name: "牛乳"},
		unit.Measured{Value: 200, Unit: "ml", Name: "牛乳"},
	)
	require.True(t, res.CanCompare)
	assert.True(t, res.IsEnough)

	// Cruce de densidad: 100 g de soja contra 100 ml requeridos (115 g).
	res = unit.Compare(
		unit.Measured{Value: 100, Unit: "g", Name: "醤油"},
		unit.Measured{Value: 100, Unit: "ml", Name: "醤油"},
	)
	require.True(t, res.CanCompare)
	assert.False(t, res.IsEnough)
	assert.Equal(t, "ml", res.ShortageUnit)

	// Incompatibles: 1 botella contra 200 ml, sin conversión posible.
	res = unit.Compare(
		unit.Measured{Value: 1, Unit: "本", Name: "牛乳"},
		unit.Measured{Value: 200, Unit: "ml", Name: "牛乳"},
	)
	assert.False(t, res.CanCompare)
	assert.Contains(t, res.Reason, "本")
	assert.Contains(t, res.Reason, "ml")
}

// TestCompare_Total el comparador es una función total: toda combinación de
// categorías produce un resultado definido, jamás un panic.
func TestCompare_Total(t *testing.T) {
	units := []string{"g", "ml", "大さじ", "個", "少々", "箱", ""}
	for _, invUnit := range units {
		for _, reqUnit := range units {
			name := fmt.Sprintf("%q-vs-%q", invUnit, reqUnit)
			t.Run(name, func(t *testing.T) {
				res := unit.Compare(
					unit.Measured{Value: 3, Unit: invUnit, Name: "牛乳"},
					unit.Measured{Value: 2, Unit: reqUnit, Name: "牛乳"},
				)
				if !res.CanCompare {
					// El contrato exige motivo cuando no hay comparación.
					assert.NotEmpty(t, res.Reason)
				}
			})
		}
	}
}
