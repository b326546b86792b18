package handlers

import (
	"errors"
	"fmt"
	"log"

	"recipebox/internal/models"
	"recipebox/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errInvalidID = errors.New("invalid recipe ID")

// RecipeHandler handles HTTP requests for the recipe catalog.
type RecipeHandler struct {
	store *services.RecipeStore
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(store *services.RecipeStore) *RecipeHandler {
	return &RecipeHandler{store: store}
}

// RegisterRoutes registers the recipe routes with the Fiber app.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Get("/", h.HandleListRecipes)
	recipeRoutes.Get("/new", h.HandleNewRecipe)
	recipeRoutes.Get("/:id", h.HandleGetRecipe)
	recipeRoutes.Get("/:id/ingredients", h.HandleGetIngredients)
	recipeRoutes.Get("/:id/directions", h.HandleGetDirections)
	recipeRoutes.Post("/", h.HandleCreateRecipe)
	recipeRoutes.Put("/:id", h.HandleUpdateRecipe)
	recipeRoutes.Post("/:id/favorite", h.HandleToggleFavorite)
	recipeRoutes.Delete("/:id", h.HandleDeleteRecipe)
}

// HandleListRecipes lists the catalog. The optional filters q, category and
// favorites narrow the result and can be combined; catalog order is kept.
func (h *RecipeHandler) HandleListRecipes(c *fiber.Ctx) error {
	var results [][]models.Recipe
	if raw := c.Query("category"); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid category",
				"error":   err.Error(),
			})
		}
		results = append(results, h.store.RecipesByCategory(category))
	}
	if c.QueryBool("favorites") {
		results = append(results, h.store.FavoriteRecipes())
	}
	if q := c.Query("q"); q != "" {
		results = append(results, h.store.Search(q))
	}

	if len(results) == 0 {
		return c.JSON(h.store.Recipes())
	}
	recipes := results[0]
	for _, other := range results[1:] {
		recipes = intersect(recipes, other)
	}
	return c.JSON(recipes)
}

// intersect keeps the recipes of a whose ID also appears in b, in a's order.
func intersect(a, b []models.Recipe) []models.Recipe {
	ids := make(map[uuid.UUID]struct{}, len(b))
	for _, r := range b {
		ids[r.ID] = struct{}{}
	}
	out := make([]models.Recipe, 0, len(a))
	for _, r := range a {
		if _, ok := ids[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// HandleNewRecipe returns an empty recipe for an editor to fill in.
func (h *RecipeHandler) HandleNewRecipe(c *fiber.Ctx) error {
	return c.JSON(models.NewRecipe())
}

// HandleGetRecipe retrieves a single recipe by its ID.
func (h *RecipeHandler) HandleGetRecipe(c *fiber.Ctx) error {
	recipe, err := h.lookup(c)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(recipe)
}

// IngredientLine pairs an ingredient with its display text.
type IngredientLine struct {
	Ingredient models.Ingredient `json:"ingredient"`
	Text       string            `json:"text"`
}

// HandleGetIngredients renders a recipe's ingredient list.
func (h *RecipeHandler) HandleGetIngredients(c *fiber.Ctx) error {
	recipe, err := h.lookup(c)
	if err != nil {
		return h.respondError(c, err)
	}
	lines := make([]IngredientLine, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		lines = append(lines, IngredientLine{Ingredient: ing, Text: ing.Description()})
	}
	return c.JSON(lines)
}

// HandleGetDirections returns a recipe's numbered steps. With
// hideOptional=true optional steps are left out and numbering skips them.
func (h *RecipeHandler) HandleGetDirections(c *fiber.Ctx) error {
	recipe, err := h.lookup(c)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(recipe.NumberedDirections(c.QueryBool("hideOptional")))
}

// HandleCreateRecipe adds a recipe to the end of the catalog.
func (h *RecipeHandler) HandleCreateRecipe(c *fiber.Ctx) error {
	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		log.Printf("Error parsing recipe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := recipe.ValidateFields(); err != nil {
		return validationFailed(c, err)
	}

	if err := h.store.Add(c.UserContext(), &recipe); err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// HandleUpdateRecipe replaces the recipe with the ID in the path.
func (h *RecipeHandler) HandleUpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.respondError(c, err)
	}

	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		log.Printf("Error parsing recipe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	recipe.ID = id
	if err := recipe.ValidateFields(); err != nil {
		return validationFailed(c, err)
	}

	if err := h.store.Update(c.UserContext(), &recipe); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(recipe)
}

// HandleToggleFavorite flips a recipe's favorite flag.
func (h *RecipeHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.respondError(c, err)
	}
	recipe, err := h.store.ToggleFavorite(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(recipe)
}

// HandleDeleteRecipe removes a recipe from the catalog.
func (h *RecipeHandler) HandleDeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return h.respondError(c, err)
	}
	if err := h.store.Remove(c.UserContext(), id); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Recipe with ID %s deleted successfully", id),
	})
}

func (h *RecipeHandler) lookup(c *fiber.Ctx) (models.Recipe, error) {
	id, err := parseID(c)
	if err != nil {
		return models.Recipe{}, err
	}
	return h.store.Get(id)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q", errInvalidID, c.Params("id"))
	}
	return id, nil
}

// respondError writes the response matching err.
func (h *RecipeHandler) respondError(c *fiber.Ctx, err error) error {
	var persistErr *services.PersistenceError
	switch {
	case errors.Is(err, errInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid recipe ID",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidRecipe):
		return validationFailed(c, err)
	case errors.Is(err, services.ErrRecipeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Recipe with ID %s not found", c.Params("id")),
		})
	case errors.Is(err, services.ErrDuplicateRecipe):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Recipe already exists",
			"error":   err.Error(),
		})
	case errors.As(err, &persistErr):
		log.Printf("Error persisting recipes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save recipes",
			"error":   err.Error(),
		})
	default:
		log.Printf("Unexpected recipe store error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}

// validationFailed answers 400 with one message per failed field when err
// carries validator errors.
func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		key := e.Namespace()
		if key == "" {
			key = e.Tag() // validator.Var reports no field
		}
		errorMessages[key] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
