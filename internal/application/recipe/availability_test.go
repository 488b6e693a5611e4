package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/recipe"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
)

func decp(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func strp(s string) *string { return &s }

func item(id, name string, qty *decimal.Decimal, u *string) *entity.InventoryItem {
	return &entity.InventoryItem{ID: id, UserID: "u1", Name: name, Quantity: qty, Unit: u}
}

func ingredient(name string, qty *decimal.Decimal, u *string) *entity.RecipeIngredient {
	return &entity.RecipeIngredient{ID: "ing-" + name, RecipeID: "r1", Name: name, QuantityValue: qty, QuantityUnit: u}
}

func TestCheckAvailability_Estados(t *testing.T) {
	items := []*entity.InventoryItem{
		item("i1", "豚肉", decp(500), strp("g")),
		item("i2", "牛乳", decp(100), strp("ml")),
		item("i3", "卵", nil, nil),
	}

	t.Run("suficiente es available", func(t *testing.T) {
		res := recipe.CheckAvailability(
			[]*entity.RecipeIngredient{ingredient("豚肉", decp(200), strp("g"))}, items)
		require.Len(t, res, 1)
		assert.Equal(t, dto.AvailabilityAvailable, res[0].Status)
		assert.Equal(t, "i1", res[0].InventoryID)
	})

	t.Run("insuficiente es partial con faltante", func(t *testing.T) {
		res := recipe.CheckAvailability(
			[]*entity.RecipeIngredient{ingredient("牛乳", decp(200), strp("ml"))}, items)
		require.Len(t, res, 1)
		assert.Equal(t, dto.AvailabilityPartial, res[0].Status)
		require.NotNil(t, res[0].Shortage)
		assert.InDelta(t, 100, *res[0].Shortage, 1e-9)
		assert.Equal(t, "ml", res[0].ShortageUnit)
	})

	t.Run("sin registro es missing", func(t *testing.T) {
		res := recipe.CheckAvailability(
			[]*entity.RecipeIngredient{ingredient("人参", decp(1), strp("本"))}, items)
		require.Len(t, res, 1)
		assert.Equal(t, dto.AvailabilityMissing, res[0].Status)
	})

	t.Run("unidades incomparables es unknown con motivo", func(t *testing.T) {
		res := recipe.CheckAvailability(
			[]*entity.RecipeIngredient{ingredient("牛乳", decp(1), strp("本"))}, items)
		require.Len(t, res, 1)
		assert.Equal(t, dto.AvailabilityUnknown, res[0].Status)
		assert.NotEmpty(t, res[0].Reason)
	})

	t.Run("receta sin cantidad es available si empareja", func(t *testing.T) {
		res := recipe.CheckAvailability(
			[]*entity.RecipeIngredient{ingredient("豚肉", nil, nil)}, items)
		require.Len(t, res, 1)
		assert.Equal(t, dto.AvailabilityAvailable, res[0].Status)
	})

	t.Run("despensa sin cantidad aplica default de 1 pieza", func(t *testing.T) {
		// 卵 sin cantidad registrada cuenta como 1個.
		res := recipe.CheckAvailability(
			[]*entity.RecipeIngredient{ingredient("卵", decp(2), strp("個"))}, items)
		require.Len(t, res, 1)
		assert.Equal(t, dto.AvailabilityPartial, res[0].Status)
		require.NotNil(t, res[0].Shortage)
		assert.InDelta(t, 1, *res[0].Shortage, 1e-9)
	})
}

func TestCheckAvailability_EmparejadoDifuso(t *testing.T) {
	items := []*entity.InventoryItem{
		item("i1", "絹豆腐", decp(1), strp("丁")),
	}

	// 豆腐 requerido empareja con 絹豆腐 por grupo de sinónimos.
	res := recipe.CheckAvailability(
		[]*entity.RecipeIngredient{ingredient("木綿豆腐", decp(1), strp("丁"))}, items)
	require.Len(t, res, 1)
	assert.Equal(t, dto.AvailabilityAvailable, res[0].Status)
	assert.Equal(t, "絹豆腐", res[0].InventoryName)
}

func TestCheckAvailability_VinculoDirectoGanaAlDifuso(t *testing.T) {
	items := []*entity.InventoryItem{
		item("i1", "牛乳", decp(500), strp("ml")),
		item("i2", "豆乳", decp(500), strp("ml")),
	}
	ing := ingredient("牛乳", decp(200), strp("ml"))
	ing.InventoryID = strp("i2")

	// El vínculo capturado al generar la receta manda sobre el nombre.
	res := recipe.CheckAvailability([]*entity.RecipeIngredient{ing}, items)
	require.Len(t, res, 1)
	assert.Equal(t, "i2", res[0].InventoryID)
	assert.Equal(t, dto.AvailabilityAvailable, res[0].Status)
}

func TestCheckAvailability_VinculoRotoCaeAlDifuso(t *testing.T) {
	items := []*entity.InventoryItem{
		item("i1", "牛乳", decp(500), strp("ml")),
	}
	ing := ingredient("牛乳", decp(200), strp("ml"))
	ing.InventoryID = strp("ya-borrado")

	res := recipe.CheckAvailability([]*entity.RecipeIngredient{ing}, items)
	require.Len(t, res, 1)
	assert.Equal(t, "i1", res[0].InventoryID)
	assert.Equal(t, dto.AvailabilityAvailable, res[0].Status)
}

func TestCheckAvailability_CondimentoImpreciso(t *testing.T) {
	items := []*entity.InventoryItem{
		item("i1", "塩", decp(100), strp("g")),
	}

	// 適量 requerido se satisface con cualquier stock positivo.
	res := recipe.CheckAvailability(
		[]*entity.RecipeIngredient{ingredient("塩", decp(1), strp("適量"))}, items)
	require.Len(t, res, 1)
	assert.Equal(t, dto.AvailabilityAvailable, res[0].Status)
}
