package models_test

import (
	"encoding/json"
	"testing"

	"recipebox/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInfo() models.MainInformation {
	return models.MainInformation{Name: "Toast", Description: "Crunchy", Author: "Sam", Category: models.CategoryBreakfast}
}

func validRecipe() models.Recipe {
	r := models.NewRecipe()
	r.MainInformation = validInfo()
	r.Ingredients = []models.Ingredient{{Name: "Bread", Quantity: 2, Unit: models.UnitNone}}
	r.Directions = []models.Direction{{Description: "Toast the bread"}}
	return r
}

func TestMainInformation_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.MainInformation)
		want   bool
	}{
		{"all fields set", func(*models.MainInformation) {}, true},
		{"empty name", func(m *models.MainInformation) { m.Name = "" }, false},
		{"empty description", func(m *models.MainInformation) { m.Description = "" }, false},
		{"empty author", func(m *models.MainInformation) { m.Author = "" }, false},
		{"whitespace counts", func(m *models.MainInformation) { m.Name = " " }, true},
		{"category not considered", func(m *models.MainInformation) { m.Category = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.mutate(&info)
			assert.Equal(t, tt.want, info.IsValid())
		})
	}
}

func TestRecipe_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Recipe)
		want   bool
	}{
		{"complete", func(*models.Recipe) {}, true},
		{"invalid main information", func(r *models.Recipe) { r.MainInformation.Author = "" }, false},
		{"no ingredients", func(r *models.Recipe) { r.Ingredients = nil }, false},
		{"no directions", func(r *models.Recipe) { r.Directions = []models.Direction{} }, false},
		{"ingredient contents not inspected", func(r *models.Recipe) { r.Ingredients = []models.Ingredient{{}} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)
			assert.Equal(t, tt.want, r.IsValid())
		})
	}
}

func TestRecipe_ValidateReportsFields(t *testing.T) {
	r := models.NewRecipe()
	err := r.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field())
	}
	assert.ElementsMatch(t, []string{"Name", "Description", "Author", "Ingredients", "Directions"}, fields)
}

func TestNewRecipe(t *testing.T) {
	a := models.NewRecipe()
	b := models.NewRecipe()
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, models.CategoryBreakfast, a.MainInformation.Category)
	assert.False(t, a.IsFavorite)
	assert.False(t, a.IsValid())
}

func TestRecipe_ValidateFields(t *testing.T) {
	r := validRecipe()
	assert.NoError(t, r.ValidateFields())

	r.MainInformation.Category = "Brunch"
	assert.Error(t, r.ValidateFields())

	r = validRecipe()
	r.Ingredients = append(r.Ingredients, models.Ingredient{Name: "Butter", Quantity: -1, Unit: models.UnitGrams})
	err := r.ValidateFields()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingredient 1")
}

func TestRecipe_Clone(t *testing.T) {
	r := validRecipe()
	c := r.Clone()
	c.Ingredients[0].Name = "Rye"
	c.Directions[0].Description = "Burn it"
	assert.Equal(t, "Bread", r.Ingredients[0].Name)
	assert.Equal(t, "Toast the bread", r.Directions[0].Description)
	assert.Equal(t, r.ID, c.ID)
}

func TestRecipe_IndexOfDirection(t *testing.T) {
	a := models.Direction{Description: "A"}
	b := models.Direction{Description: "B", IsOptional: true}
	c := models.Direction{Description: "C"}
	r := models.Recipe{Directions: []models.Direction{a, b, c}}

	tests := []struct {
		name              string
		query             models.Direction
		excludingOptional bool
		wantIndex         int
		wantFound         bool
	}{
		{"C excluding optional", c, true, 1, true},
		{"C including optional", c, false, 2, true},
		{"B excluding optional", b, true, -1, false},
		{"B including optional", b, false, 1, true},
		{"optional flag of query ignored", models.Direction{Description: "C", IsOptional: true}, true, 1, true},
		{"unknown text", models.Direction{Description: "D"}, false, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := r.IndexOfDirection(tt.query, tt.excludingOptional)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantIndex, idx)
		})
	}
}

func TestRecipe_IndexOfDirectionDuplicateText(t *testing.T) {
	r := models.Recipe{Directions: []models.Direction{
		{Description: "Stir", IsOptional: true},
		{Description: "Stir"},
	}}
	idx, ok := r.IndexOfDirection(models.Direction{Description: "Stir"}, false)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestRecipe_NumberedDirections(t *testing.T) {
	r := models.Recipe{Directions: []models.Direction{
		{Description: "A"},
		{Description: "B", IsOptional: true},
		{Description: "C"},
	}}

	hidden := r.NumberedDirections(true)
	require.Len(t, hidden, 2)
	assert.Equal(t, 1, hidden[0].Step)
	assert.Equal(t, "C", hidden[1].Direction.Description)
	assert.Equal(t, 2, hidden[1].Step)

	shown := r.NumberedDirections(false)
	require.Len(t, shown, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{shown[0].Step, shown[1].Step, shown[2].Step})
	assert.True(t, shown[1].Direction.IsOptional)
}

func TestCategory_JSON(t *testing.T) {
	var info models.MainInformation
	require.NoError(t, json.Unmarshal([]byte(`{"name":"n","description":"d","author":"a","category":"Dessert"}`), &info))
	assert.Equal(t, models.CategoryDessert, info.Category)

	err := json.Unmarshal([]byte(`{"category":"Brunch"}`), &info)
	assert.Error(t, err)
}

func TestRecipe_JSONShape(t *testing.T) {
	r := validRecipe()
	r.IsFavorite = true
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, r.ID.String(), raw["id"])
	assert.Equal(t, true, raw["isFavorite"])
	info := raw["mainInformation"].(map[string]any)
	assert.Equal(t, "Breakfast", info["category"])
	ing := raw["ingredients"].([]any)[0].(map[string]any)
	assert.Equal(t, "No units", ing["unit"])
	assert.Equal(t, float64(2), ing["quantity"])
	dir := raw["directions"].([]any)[0].(map[string]any)
	assert.Equal(t, false, dir["isOptional"])
}

func TestRecipe_DecodesUppercaseID(t *testing.T) {
	doc := `{"id":"E621E1F8-C36C-495A-93FC-0C247A3E6E5F","mainInformation":{"name":"n","description":"d","author":"a","category":"Lunch"},` +
		`"ingredients":[{"name":"Egg","quantity":1,"unit":"No units"}],"directions":[{"description":"Boil","isOptional":false}],"isFavorite":false}`
	var r models.Recipe
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	assert.Equal(t, uuid.MustParse("e621e1f8-c36c-495a-93fc-0c247a3e6e5f"), r.ID)
	assert.True(t, r.IsValid())
}

func TestSampleRecipes(t *testing.T) {
	samples := models.SampleRecipes()
	require.Len(t, samples, 14)
	seen := map[uuid.UUID]bool{}
	categories := map[models.Category]bool{}
	for _, r := range samples {
		assert.True(t, r.IsValid(), r.MainInformation.Name)
		assert.NoError(t, r.ValidateFields(), r.MainInformation.Name)
		assert.False(t, seen[r.ID], "duplicate id")
		seen[r.ID] = true
		categories[r.MainInformation.Category] = true
	}
	for _, c := range models.Categories {
		assert.True(t, categories[c], "no sample for %s", c)
	}
	assert.Len(t, seen, 14)
	assert.Equal(t, "Chicken Feta Meatballs", samples[0].MainInformation.Name)
	assert.Equal(t, "Crumpets", samples[13].MainInformation.Name)
	assert.NotEqual(t, samples[0].ID, models.SampleRecipes()[0].ID)
}
