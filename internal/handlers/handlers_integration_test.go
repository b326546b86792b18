package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recipebox/internal/handlers"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/repositories"
	"recipebox/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingDocumentStore struct{}

func (failingDocumentStore) Read(context.Context) ([]byte, error) {
	return nil, repositories.ErrNoDocument
}

func (failingDocumentStore) Write(context.Context, []byte) error {
	return errors.New("disk full")
}

// setupApp builds a Fiber app over an in-memory catalog seeded with the sample recipes.
func setupApp(t *testing.T, docs repositories.DocumentStore) (*fiber.App, *services.RecipeStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	authService := services.NewAuthService("scotty", string(hash), "test_jwt_secret")

	store := services.NewRecipeStore(docs, models.SampleRecipes())
	require.NoError(t, store.Load(context.Background()))

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewRecipeHandler(store).RegisterRoutes(protectedRoutes)

	return app, store
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "scotty",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func recipeNamed(t *testing.T, store *services.RecipeStore, name string) models.Recipe {
	t.Helper()
	for _, r := range store.Recipes() {
		if r.MainInformation.Name == name {
			return r
		}
	}
	t.Fatalf("no recipe named %q", name)
	return models.Recipe{}
}

func newRecipePayload() map[string]any {
	return map[string]any{
		"mainInformation": map[string]any{
			"name":        "Pancakes",
			"description": "Fluffy",
			"author":      "Scotty",
			"category":    "Breakfast",
		},
		"ingredients": []map[string]any{
			{"name": "Flour", "quantity": 1.5, "unit": "Cups"},
			{"name": "Egg", "quantity": 2, "unit": "No units"},
		},
		"directions": []map[string]any{
			{"description": "Whisk", "isOptional": false},
			{"description": "Add blueberries", "isOptional": true},
		},
	}
}

func TestAuthLogin(t *testing.T) {
	app, _ := setupApp(t, repositories.NewMemoryDocumentStore())

	token := login(t, app)
	assert.NotEmpty(t, token)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "scotty",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "scotty"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestRecipeEndpointsWithoutAuth(t *testing.T) {
	app, _ := setupApp(t, repositories.NewMemoryDocumentStore())

	resp := doJSON(t, app, http.MethodGet, "/api/v1/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/recipes", "not-a-token", newRecipePayload())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestListRecipes(t *testing.T) {
	app, store := setupApp(t, repositories.NewMemoryDocumentStore())
	token := login(t, app)

	listNames := func(t *testing.T, target string) []string {
		t.Helper()
		resp := doJSON(t, app, http.MethodGet, target, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var recipes []models.Recipe
		decode(t, resp, &recipes)
		got := []string{}
		for _, r := range recipes {
			got = append(got, r.MainInformation.Name)
		}
		return got
	}

	assert.Empty(t, listNames(t, "/api/v1/recipes?favorites=true"))

	ctx := context.Background()
	for _, name := range []string{"White Clam Sauce", "Lemon Posset"} {
		_, err := store.SetFavorite(ctx, recipeNamed(t, store, name).ID, true)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all", "/api/v1/recipes", []string{
			"Chicken Feta Meatballs", "Beet and Apple Salad", "Braised Beef Brisket", "Best Brownies Ever",
			"Omelet and Greens", "Vegetarian Chili", "Classic Shrimp Scampi", "Chocolate Billionaires",
			"Mac & Cheese", "Veggie Soup", "White Clam Sauce", "Granola Bowl", "Lemon Posset", "Crumpets",
		}},
		{"category", "/api/v1/recipes?category=Dessert", []string{"Best Brownies Ever", "Chocolate Billionaires", "Lemon Posset"}},
		{"search", "/api/v1/recipes?q=LEMON", []string{"Chicken Feta Meatballs", "Lemon Posset"}},
		{"search within category", "/api/v1/recipes?q=lemon&category=Dessert", []string{"Lemon Posset"}},
		{"favorites", "/api/v1/recipes?favorites=true", []string{"White Clam Sauce", "Lemon Posset"}},
		{"favorites within category", "/api/v1/recipes?category=Dinner&favorites=true", []string{"White Clam Sauce"}},
		{"all filters", "/api/v1/recipes?q=travis&category=Dinner&favorites=true", []string{}},
		{"no match", "/api/v1/recipes?category=Lunch&favorites=true", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listNames(t, tt.target))
		})
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/recipes?category=Brunch", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, len(models.SampleRecipes()), store.Len())
}

func TestNewRecipeTemplate(t *testing.T) {
	app, store := setupApp(t, repositories.NewMemoryDocumentStore())
	token := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/recipes/new", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recipe models.Recipe
	decode(t, resp, &recipe)
	assert.Equal(t, models.CategoryBreakfast, recipe.MainInformation.Category)
	assert.Empty(t, recipe.Ingredients)
	assert.False(t, recipe.IsValid())

	_, found := store.IndexOf(recipe)
	assert.False(t, found)
}

func TestRecipeDetailEndpoints(t *testing.T) {
	app, store := setupApp(t, repositories.NewMemoryDocumentStore())
	token := login(t, app)
	granola := recipeNamed(t, store, "Granola Bowl")
	base := "/api/v1/recipes/" + granola.ID.String()

	resp := doJSON(t, app, http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Recipe
	decode(t, resp, &fetched)
	assert.Equal(t, granola, fetched)

	resp = doJSON(t, app, http.MethodGet, base+"/ingredients", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lines []handlers.IngredientLine
	decode(t, resp, &lines)
	require.Len(t, lines, 3)
	assert.Equal(t, "0.5 Cups Granola ", lines[0].Text)
	assert.Equal(t, "1 Banana", lines[1].Text)
	assert.Equal(t, "2 Tablespoons Peanut Butter ", lines[2].Text)
	assert.Equal(t, models.UnitCups, lines[0].Ingredient.Unit)

	resp = doJSON(t, app, http.MethodGet, base+"/directions?hideOptional=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var steps []models.NumberedDirection
	decode(t, resp, &steps)
	require.Len(t, steps, 2)
	assert.Equal(t, 2, steps[1].Step)

	resp = doJSON(t, app, http.MethodGet, base+"/directions", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &steps)
	require.Len(t, steps, 3)
	assert.True(t, steps[2].Direction.IsOptional)
	assert.Equal(t, 3, steps[2].Step)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/recipes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/recipes/"+models.NewRecipe().ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateRecipe(t *testing.T) {
	docs := repositories.NewMemoryDocumentStore()
	app, store := setupApp(t, docs)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/recipes", token, newRecipePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Recipe
	decode(t, resp, &created)
	assert.Equal(t, "Pancakes", created.MainInformation.Name)

	all := store.Recipes()
	require.Len(t, all, len(models.SampleRecipes())+1)
	assert.Equal(t, created.ID, all[len(all)-1].ID)
	assert.Equal(t, 1, docs.Writes())

	reloaded := services.NewRecipeStore(docs, nil)
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Equal(t, all, reloaded.Recipes())
}

func TestCreateRecipeRejected(t *testing.T) {
	docs := repositories.NewMemoryDocumentStore()
	app, store := setupApp(t, docs)
	token := login(t, app)

	noDirections := newRecipePayload()
	noDirections["directions"] = []any{}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/recipes", token, noDirections)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "Recipe.Directions")

	badUnit := newRecipePayload()
	badUnit["ingredients"] = []map[string]any{{"name": "Salt", "quantity": 1, "unit": "Pinches"}}
	resp = doJSON(t, app, http.MethodPost, "/api/v1/recipes", token, badUnit)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	negative := newRecipePayload()
	negative["ingredients"] = []map[string]any{{"name": "Salt", "quantity": -1, "unit": "Grams"}}
	resp = doJSON(t, app, http.MethodPost, "/api/v1/recipes", token, negative)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, len(models.SampleRecipes()), store.Len())
	assert.Equal(t, 0, docs.Writes())
}

func TestCreateRecipeSaveFailure(t *testing.T) {
	app, store := setupApp(t, failingDocumentStore{})
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/recipes", token, newRecipePayload())
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, len(models.SampleRecipes()), store.Len())
}

func TestUpdateFavoriteAndDeleteRecipe(t *testing.T) {
	app, store := setupApp(t, repositories.NewMemoryDocumentStore())
	token := login(t, app)
	salad := recipeNamed(t, store, "Beet and Apple Salad")
	base := "/api/v1/recipes/" + salad.ID.String()

	payload := newRecipePayload()
	payload["mainInformation"].(map[string]any)["name"] = "Beet Salad"
	payload["mainInformation"].(map[string]any)["category"] = "Lunch"
	resp := doJSON(t, app, http.MethodPut, base, token, payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Recipe
	decode(t, resp, &updated)
	assert.Equal(t, salad.ID, updated.ID)
	idx, found := store.IndexOf(updated)
	assert.True(t, found)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Beet Salad", recipeNamed(t, store, "Beet Salad").MainInformation.Name)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/recipes/"+models.NewRecipe().ID.String(), token, payload)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, base+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var favorite models.Recipe
	decode(t, resp, &favorite)
	assert.True(t, favorite.IsFavorite)
	assert.Len(t, store.FavoriteRecipes(), 1)

	resp = doJSON(t, app, http.MethodDelete, base, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted map[string]string
	decode(t, resp, &deleted)
	assert.Contains(t, deleted["message"], "deleted successfully")

	resp = doJSON(t, app, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, base, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
