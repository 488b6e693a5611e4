package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/match"
)

func items(names ...string) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(names))
	for i, n := range names {
		out = append(out, &entity.InventoryItem{ID: string(rune('a' + i)), Name: n})
	}
	return out
}

func TestFindMatch_Exacto(t *testing.T) {
	inv := items("牛乳", "卵")
	got := match.FindMatch("牛乳", inv)
	require.NotNil(t, got)
	assert.Equal(t, "牛乳", got.Name)
}

func TestFindMatch_SubcadenaBidireccional(t *testing.T) {
	// El ingrediente contiene el nombre de despensa.
	inv := items("キャベツ")
	got := match.FindMatch("春キャベツ", inv)
	require.NotNil(t, got)
	assert.Equal(t, "キャベツ", got.Name)

	// Y al revés: el registro de despensa contiene el ingrediente.
	inv = items("刻みキャベツ")
	got = match.FindMatch("キャベツ", inv)
	require.NotNil(t, got)
}

func TestFindMatch_ExactoGanaSobreDifuso(t *testing.T) {
	// El difuso aparece primero en la lista pero el exacto debe ganar.
	inv := items("牛乳パック", "牛乳")
	got := match.FindMatch("牛乳", inv)
	require.NotNil(t, got)
	assert.Equal(t, "牛乳", got.Name)
}

func TestFindMatch_GrupoDeSinonimos(t *testing.T) {
	// 絹豆腐 y 木綿豆腐 no comparten subcadena: solo el grupo los une.
	inv := items("木綿豆腐")
	got := match.FindMatch("絹豆腐", inv)
	require.NotNil(t, got)
	assert.Equal(t, "木綿豆腐", got.Name)

	// 豆乳 no pertenece al grupo del tofu: sin coincidencia.
	inv = items("豆乳")
	assert.Nil(t, match.FindMatch("絹豆腐", inv))
}

func TestFindMatch_GrupoOrdenDeMiembros(t *testing.T) {
	// Con varios miembros presentes gana el que el orden del grupo alcanza
	// primero ("豆腐" es el primer miembro y coincide por subcadena).
	inv := items("絹ごし豆腐", "木綿豆腐")
	got := match.FindMatch("豆腐", inv)
	require.NotNil(t, got)
	// "豆腐" coincide exacto con ninguno; por subcadena bidireccional el primer
	// registro que lo contiene es 絹ごし豆腐.
	assert.Equal(t, "絹ごし豆腐", got.Name)
}

func TestFindMatch_SinCoincidencia(t *testing.T) {
	inv := items("にんじん", "玉ねぎ")
	assert.Nil(t, match.FindMatch("鮭", inv))
	assert.Nil(t, match.FindMatch("", inv))
	assert.Nil(t, match.FindMatch("卵", nil))
}
