package unit

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ParsedQuantity resultado de interpretar una expresión libre de cantidad
// ("1/2個", "大さじ" , "200ml", "半分"). Success=false solo para entrada vacía;
// el caller debe tratar ese caso como cantidad ausente, no como error.
type ParsedQuantity struct {
	Value   float64
	Unit    string
	Success bool
}

// Patrones en orden de especificidad. El orden es política de desempate:
// las formas numéricas más específicas se intentan antes que el entero para
// no interpretar "1/2" como entero 1 con unidad basura "/2".
var (
	reFraction   = regexp.MustCompile(`^(\d+)/(\d+)(.*)$`)
	reAndHalf    = regexp.MustCompile(`^(\d+(?:\.\d+)?)(.*)半$`)
	reHalfPrefix = regexp.MustCompile(`^半(.*)$`)
	reDecimal    = regexp.MustCompile(`^(\d+\.\d+)(.*)$`)
	reInteger    = regexp.MustCompile(`^(\d+)(.*)$`)
)

// ParseQuantity interpreta una expresión de cantidad en (valor, unidad).
// Intentos ordenados, gana el primero que aplica:
//
//  1. Fracción con barra: "1/2個" -> 0.5, "個". Denominador 0 se descarta.
//  2. "N y medio": "1個半" -> 1.5, "個".
//  3. "半" inicial: "半分" -> 0.5 sin unidad; "半丁" -> 0.5, "丁".
//  4. Decimal: "1.5カップ" -> 1.5, "カップ".
//  5. Entero: "200ml" -> 200, "ml".
//  6. Sin prefijo numérico: la palabra de unidad sola implica cantidad 1.
//  7. Entrada vacía: Success=false.
func ParseQuantity(raw string) ParsedQuantity {
	// Plegar dígitos de ancho completo ("２００ｍｌ") antes de aplicar patrones.
	s := strings.TrimSpace(width.Fold.String(strings.TrimSpace(raw)))
	if s == "" {
		return ParsedQuantity{Value: 0, Unit: "", Success: false}
	}

	if m := reFraction.FindStringSubmatch(s); m != nil {
		num, errN := strconv.ParseFloat(m[1], 64)
		den, errD := strconv.ParseFloat(m[2], 64)
		if errN == nil && errD == nil && den != 0 {
			return ParsedQuantity{Value: num / den, Unit: strings.TrimSpace(m[3]), Success: true}
		}
		// denominador 0: cae a los patrones siguientes
	}

	if m := reAndHalf.FindStringSubmatch(s); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return ParsedQuantity{Value: n + 0.5, Unit: strings.TrimSpace(m[2]), Success: true}
		}
	}

	if m := reHalfPrefix.FindStringSubmatch(s); m != nil {
		tail := strings.TrimSpace(m[1])
		// "半分" es la palabra "mitad" sin unidad posterior; cualquier otro
		// resto ("半丁", "半カップ") sí es unidad.
		if tail == "分" {
			tail = ""
		}
		return ParsedQuantity{Value: 0.5, Unit: tail, Success: true}
	}

	if m := reDecimal.FindStringSubmatch(s); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return ParsedQuantity{Value: n, Unit: strings.TrimSpace(m[2]), Success: true}
		}
	}

	if m := reInteger.FindStringSubmatch(s); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return ParsedQuantity{Value: n, Unit: strings.TrimSpace(m[2]), Success: true}
		}
	}

	// Palabra de unidad sola ("適量", "大さじ"): cantidad implícita 1.
	return ParsedQuantity{Value: 1, Unit: s, Success: true}
}
