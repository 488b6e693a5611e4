package unit

import "strings"

// IngredientDensity densidad de referencia (g por ml) de un alimento o
// condimento conocido, con alias de escritura. Tabla estática de solo lectura.
type IngredientDensity struct {
	CanonicalName string
	GramsPerMl    float64
	Aliases       []string
}

// densityTable tabla de densidades. El ORDEN importa: la búsqueda devuelve la
// primera coincidencia, así que las entradas más específicas van antes que las
// genéricas cuando comparten subcadenas.
var densityTable = []IngredientDensity{
	{CanonicalName: "醤油", GramsPerMl: 1.15, Aliases: []string{"しょうゆ", "しょう油", "濃口醤油", "薄口醤油"}},
	{CanonicalName: "みりん", GramsPerMl: 1.15, Aliases: []string{"味醂", "本みりん"}},
	{CanonicalName: "味噌", GramsPerMl: 1.15, Aliases: []string{"みそ", "赤味噌", "白味噌"}},
	{CanonicalName: "料理酒", GramsPerMl: 1.0, Aliases: []string{"酒", "日本酒"}},
	{CanonicalName: "酢", GramsPerMl: 1.0, Aliases: []string{"米酢", "穀物酢", "ビネガー"}},
	{CanonicalName: "水", GramsPerMl: 1.0, Aliases: []string{"お湯", "湯"}},
	{CanonicalName: "牛乳", GramsPerMl: 1.03, Aliases: []string{"ミルク", "低脂肪乳"}},
	{CanonicalName: "豆乳", GramsPerMl: 1.03, Aliases: []string{"無調整豆乳", "調製豆乳"}},
	{CanonicalName: "生クリーム", GramsPerMl: 1.0, Aliases: []string{"ホイップクリーム"}},
	{CanonicalName: "砂糖", GramsPerMl: 0.6, Aliases: []string{"上白糖", "グラニュー糖", "三温糖"}},
	{CanonicalName: "塩", GramsPerMl: 1.2, Aliases: []string{"食塩", "粗塩"}},
	{CanonicalName: "小麦粉", GramsPerMl: 0.55, Aliases: []string{"薄力粉", "強力粉", "中力粉"}},
	{CanonicalName: "片栗粉", GramsPerMl: 0.6, Aliases: []string{"でんぷん", "コーンスターチ"}},
	{CanonicalName: "パン粉", GramsPerMl: 0.2, Aliases: nil},
	{CanonicalName: "油", GramsPerMl: 0.92, Aliases: []string{"サラダ油", "ごま油", "オリーブオイル", "オリーブ油", "キャノーラ油"}},
	{CanonicalName: "バター", GramsPerMl: 0.91, Aliases: []string{"無塩バター", "有塩バター", "マーガリン"}},
	{CanonicalName: "マヨネーズ", GramsPerMl: 0.95, Aliases: nil},
	{CanonicalName: "ケチャップ", GramsPerMl: 1.15, Aliases: []string{"トマトケチャップ"}},
	{CanonicalName: "ソース", GramsPerMl: 1.2, Aliases: []string{"ウスターソース", "中濃ソース", "オイスターソース"}},
	{CanonicalName: "はちみつ", GramsPerMl: 1.4, Aliases: []string{"ハチミツ", "蜂蜜"}},
	{CanonicalName: "米", GramsPerMl: 0.85, Aliases: []string{"白米", "無洗米"}},
}

// LookupDensity busca la densidad (g/ml) de un ingrediente por nombre.
// Coincide si el nombre es igual, contiene o está contenido en el nombre
// canónico o cualquiera de sus alias (sin distinguir mayúsculas). Gana la
// primera entrada de la tabla.
func LookupDensity(ingredientName string) (float64, bool) {
	name := strings.ToLower(strings.TrimSpace(ingredientName))
	if name == "" {
		return 0, false
	}
	for _, d := range densityTable {
		if densityNameMatches(name, d.CanonicalName) {
			return d.GramsPerMl, true
		}
		for _, alias := range d.Aliases {
			if densityNameMatches(name, alias) {
				return d.GramsPerMl, true
			}
		}
	}
	return 0, false
}

func densityNameMatches(name, candidate string) bool {
	c := strings.ToLower(candidate)
	return name == c || strings.Contains(name, c) || strings.Contains(c, name)
}
