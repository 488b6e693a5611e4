// Package match resuelve el nombre de un ingrediente de receta contra los
// registros concretos de la despensa. El orden de desempate favorece precisión
// sobre cobertura: una coincidencia exacta gana siempre sobre una difusa,
// aunque la difusa aparezca antes en la lista.
package match

import (
	"strings"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
)

// similarFoodGroups grupos de nombres intercambiables para el emparejado.
// Tablas estáticas de solo pertenencia; el orden de los miembros dentro de
// cada grupo es fijo y determina qué registro gana cuando hay varios.
var similarFoodGroups = [][]string{
	{"豆腐", "絹豆腐", "木綿豆腐", "絹ごし豆腐"},
	{"ねぎ", "長ねぎ", "青ねぎ", "万能ねぎ", "小ねぎ"},
	{"卵", "玉子", "たまご"},
	{"鶏肉", "鶏もも肉", "鶏むね肉", "鶏ささみ", "とり肉"},
	{"豚肉", "豚こま切れ肉", "豚バラ肉", "豚ロース肉"},
	{"牛肉", "牛こま切れ肉", "牛バラ肉", "牛ロース肉"},
	{"ご飯", "ごはん", "白米", "米"},
	{"じゃがいも", "ジャガイモ", "馬鈴薯", "新じゃが"},
	{"しょうが", "生姜", "ショウガ"},
	{"にんにく", "ニンニク", "ガーリック"},
	{"きのこ", "しめじ", "えのき", "しいたけ", "エリンギ", "舞茸"},
}

// FindMatch busca el registro de despensa que corresponde a un ingrediente.
// Orden de intentos, gana el primero con éxito:
//
//  1. Igualdad exacta de nombre (sin distinguir mayúsculas).
//  2. Subcadena bidireccional (el ingrediente contiene el registro o al revés).
//  3. Pertenencia a un grupo de sinónimos: si el ingrediente es miembro de un
//     grupo, se busca cualquier registro igual/contenido/contenedor de
//     CUALQUIER miembro, iterando los miembros en su orden definido.
//
// Sin acierto en los tres pasos devuelve nil.
func FindMatch(ingredientName string, items []*entity.InventoryItem) *entity.InventoryItem {
	name := strings.ToLower(strings.TrimSpace(ingredientName))
	if name == "" {
		return nil
	}

	for _, item := range items {
		if strings.ToLower(item.Name) == name {
			return item
		}
	}

	for _, item := range items {
		itemName := strings.ToLower(item.Name)
		if itemName == "" {
			continue
		}
		if strings.Contains(name, itemName) || strings.Contains(itemName, name) {
			return item
		}
	}

	group := findSimilarGroup(name)
	if group == nil {
		return nil
	}
	for _, member := range group {
		m := strings.ToLower(member)
		for _, item := range items {
			itemName := strings.ToLower(item.Name)
			if itemName == "" {
				continue
			}
			if itemName == m || strings.Contains(itemName, m) || strings.Contains(m, itemName) {
				return item
			}
		}
	}
	return nil
}

// findSimilarGroup devuelve el grupo al que pertenece el nombre (igualdad
// exacta de miembro) o nil.
func findSimilarGroup(lowerName string) []string {
	for _, group := range similarFoodGroups {
		for _, member := range group {
			if strings.ToLower(member) == lowerName {
				return group
			}
		}
	}
	return nil
}
