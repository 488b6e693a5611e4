package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa ambos puertos.
var _ ports.ReceiptScanner = (*GeminiService)(nil)
var _ ports.RecipeGenerator = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// receiptPrompt define el rol del modelo de visión y el formato de salida.
	// Usar response_mime_type=application/json obliga a Gemini a devolver JSON
	// puro, eliminando la necesidad de limpiar bloques de markdown.
	receiptPrompt = `あなたはレシート読み取りの専門家です。
レシート画像から食材のみを抽出し、次の構造のJSON配列だけを返してください(追加のテキストなし):
[
  {"name": "<食材名>", "quantity_text": "<数量の文字列 例: 2個, 300g, 1本>", "is_staple": <true|false>}
]

ルール:
- 食材以外の商品(日用品など)は含めない。
- name は一般的な食材名に正規化する(例: "国産豚バラ" → "豚肉")。
- quantity_text はレシートに数量が無ければ空文字。
- is_staple は調味料・油など(塩、醤油、味噌、砂糖、油)のとき true。`

	// recipePrompt pide un esqueleto de receta sobre la despensa actual.
	recipePrompt = `あなたは家庭料理のレシピ提案の専門家です。
与えられた食材リストを優先的に使うレシピを1つ、次の構造のJSONだけで返してください(追加のテキストなし):
{
  "title": "<料理名>",
  "description": "<1〜2文の説明>",
  "instructions": "<番号付きの手順。改行区切り>",
  "servings": <人数>,
  "ingredients": [
    {"name": "<食材名>", "quantity": "<数量 例: 200ml, 大さじ1, 1/2個>", "inventory_id": "<リスト中のIDがあれば>"}
  ]
}

ルール:
- リストの食材を中心に構成し、無い食材は最小限にする。
- (常備) の付いた調味料は自由に使ってよい。
- quantity は日本語の一般的な単位表記で書く。`
)

// GeminiService adaptador que implementa los puertos de IA llamando a la API
// REST de Google Gemini. Usa únicamente net/http; no requiere el SDK oficial.
type GeminiService struct {
	apiKey      string
	model       string
	visionModel string
	httpClient  *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash";
// visionModel puede ser el mismo. Si apiKey está vacío las llamadas devuelven
// error descriptivo en lugar de panic.
func NewGeminiService(apiKey, model, visionModel string) *GeminiService {
	if visionModel == "" {
		visionModel = model
	}
	return &GeminiService{
		apiKey:      apiKey,
		model:       model,
		visionModel: visionModel,
		httpClient: &http.Client{
			Timeout: 25 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobData `json:"inline_data,omitempty"`
}

type geminiBlobData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// ScanReceipt envía la imagen del recibo al modelo de visión y devuelve los
// candidatos de alimento detectados.
func (s *GeminiService) ScanReceipt(ctx context.Context, imageBase64, mimeType string) ([]dto.ScannedItemDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: receiptPrompt}},
		},
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: "このレシートから食材を抽出してください。"},
					{InlineData: &geminiBlobData{MIMEType: mimeType, Data: imageBase64}},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens:  1024,
		},
	}

	rawJSON, err := s.generate(ctx, s.visionModel, payload)
	if err != nil {
		return nil, err
	}

	var items []dto.ScannedItemDTO
	if err := json.Unmarshal([]byte(rawJSON), &items); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}
	return items, nil
}

// GenerateRecipe pide al modelo de texto una receta sobre el resumen de la
// despensa y devuelve el esqueleto con cantidades en texto libre.
func (s *GeminiService) GenerateRecipe(ctx context.Context, inventorySummary []string, req dto.GenerateRecipeRequest) (*dto.GeneratedRecipeDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	var b strings.Builder
	b.WriteString("今の食材リスト:\n")
	for _, line := range inventorySummary {
		b.WriteString("- " + line + "\n")
	}
	if req.Preferences != "" {
		b.WriteString("\n希望: " + req.Preferences + "\n")
	}
	if req.Servings > 0 {
		fmt.Fprintf(&b, "人数: %d人分\n", req.Servings)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: recipePrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: b.String()}}},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.7, // algo de variedad entre propuestas
			MaxOutputTokens:  2048,
		},
	}

	rawJSON, err := s.generate(ctx, s.model, payload)
	if err != nil {
		return nil, err
	}

	var recipe dto.GeneratedRecipeDTO
	if err := json.Unmarshal([]byte(rawJSON), &recipe); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}
	return &recipe, nil
}

// generate ejecuta la llamada HTTP y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, model string, payload geminiRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
