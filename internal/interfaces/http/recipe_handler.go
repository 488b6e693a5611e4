package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/cooking"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/recipe"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/shopping"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain"
)

// RecipeHandler maneja las peticiones HTTP de recetas (protegido).
type RecipeHandler struct {
	uc         *recipe.UseCase
	cookUC     *cooking.UseCase
	shoppingUC *shopping.UseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipe.UseCase, cookUC *cooking.UseCase, shoppingUC *shopping.UseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc, cookUC: cookUC, shoppingUC: shoppingUC}
}

// List godoc
// @Summary      Listar recetas visibles
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.RecipeDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	recipes, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(recipes)
}

// Get godoc
// @Summary      Detalle de una receta con ingredientes
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecipeDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	r, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(r)
}

// Create godoc
// @Summary      Crear receta manual
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecipeRequest  true  "title e ingredients requeridos; quantity_text admite texto libre"
// @Success      201   {object}  dto.RecipeDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	r, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title e ingredients son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// Generate godoc
// @Summary      Generar receta desde la despensa
// @Description  Envía el resumen de la despensa al modelo de texto, persiste
//
//	la receta sin dueño y deja una notificación entregada que
//	habilita al usuario a cocinarla.
//
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateRecipeRequest  false  "preferences, servings"
// @Success      201   {object}  dto.RecipeDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/recipes/generate [post]
func (h *RecipeHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateRecipeRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	r, err := h.uc.Generate(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_PANTRY", Message: "la despensa está vacía"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UPSTREAM", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// Availability godoc
// @Summary      Disponibilidad de ingredientes contra la despensa
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {array}   dto.IngredientAvailabilityDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/availability [get]
func (h *RecipeHandler) Availability(c *fiber.Ctx) error {
	out, err := h.uc.Availability(GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Cook godoc
// @Summary      Marcar receta como cocinada
// @Description  Descuenta los ingredientes de la despensa en una transacción
//
//	y devuelve el reporte de consumo. Requiere ser dueño de la
//	receta, o notificación entregada si la receta no tiene dueño.
//
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  dto.CookReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/cook [post]
func (h *RecipeHandler) Cook(c *fiber.Ctx) error {
	report, err := h.cookUC.Cook(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(report)
}

// ShoppingList godoc
// @Summary      Lista de compras en PDF
// @Description  Cruza los ingredientes contra la despensa y exporta en PDF
//
//	lo que falta (missing/partial) con el faltante cuantificado.
//
// @Tags         recipes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/shopping-list [get]
func (h *RecipeHandler) ShoppingList(c *fiber.Ctx) error {
	pdfBytes, err := h.shoppingUC.GeneratePDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping-list.pdf"`)
	return c.Send(pdfBytes)
}
