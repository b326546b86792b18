package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by every model; validator caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsKnown()
	})
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return Unit(fl.Field().String()).IsKnown()
	})
	return v
}

// Category groups recipes on the browse screen.
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDessert   Category = "Dessert"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert}

// ParseCategory maps a display name back to its Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsKnown() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// IsKnown reports whether c is one of the defined categories.
func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// UnmarshalJSON rejects display names that do not name a category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MainInformation is the descriptive header of a recipe.
type MainInformation struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Category    Category `json:"category"`
}

// Validate returns an error unless name, description and author are all non-empty.
// Whitespace counts as content.
func (m MainInformation) Validate() error {
	return validate.Struct(m)
}

// IsValid reports whether Validate succeeds.
func (m MainInformation) IsValid() bool {
	return m.Validate() == nil
}

// Direction is one instruction step. Its description doubles as its identity
// for IndexOfDirection.
type Direction struct {
	Description string `json:"description"`
	IsOptional  bool   `json:"isOptional"`
}

// NewDirection returns the blank step used by the editing form.
func NewDirection() Direction {
	return Direction{}
}

// Recipe is the aggregate a user browses, favorites and edits.
// Two recipes are the same recipe iff their IDs match.
type Recipe struct {
	ID              uuid.UUID       `json:"id"`
	MainInformation MainInformation `json:"mainInformation"`
	Ingredients     []Ingredient    `json:"ingredients" validate:"min=1"`
	Directions      []Direction     `json:"directions" validate:"min=1"`
	IsFavorite      bool            `json:"isFavorite"`
}

// NewRecipe returns an empty recipe with a fresh ID, ready for an editing flow.
func NewRecipe() Recipe {
	return Recipe{
		ID: uuid.New(),
		MainInformation: MainInformation{
			Category: CategoryBreakfast,
		},
		Ingredients: []Ingredient{},
		Directions:  []Direction{},
	}
}

// Validate returns nil iff the main information is valid and the recipe has at
// least one ingredient and one direction. Individual ingredients are not inspected.
func (r Recipe) Validate() error {
	return validate.Struct(r)
}

// IsValid reports whether Validate succeeds.
func (r Recipe) IsValid() bool {
	return r.Validate() == nil
}

// ValidateFields applies the per-field rules of the editing forms: a known
// category and well-formed ingredients. It is independent of Validate.
func (r Recipe) ValidateFields() error {
	if err := validate.Var(string(r.MainInformation.Category), "category"); err != nil {
		return fmt.Errorf("category %q: %w", r.MainInformation.Category, err)
	}
	for i, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return fmt.Errorf("ingredient %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a copy that shares no slices with r.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Directions = append([]Direction(nil), r.Directions...)
	return out
}

// IndexOfDirection finds direction by description text among the recipe's
// directions, skipping optional ones when excludingOptional is set. The
// returned position is relative to that filtered list. The optional flag of
// direction itself is ignored, so steps sharing a description are
// indistinguishable and the first one wins.
func (r Recipe) IndexOfDirection(direction Direction, excludingOptional bool) (int, bool) {
	pos := 0
	for _, d := range r.Directions {
		if excludingOptional && d.IsOptional {
			continue
		}
		if d.Description == direction.Description {
			return pos, true
		}
		pos++
	}
	return -1, false
}

// NumberedDirection is a direction with the 1-based step number shown next to it.
type NumberedDirection struct {
	Step      int       `json:"step"`
	Direction Direction `json:"direction"`
}

// NumberedDirections lists the steps as the recipe detail screen shows them.
// With hideOptional set optional steps are dropped and the rest renumbered.
func (r Recipe) NumberedDirections(hideOptional bool) []NumberedDirection {
	out := make([]NumberedDirection, 0, len(r.Directions))
	for _, d := range r.Directions {
		if hideOptional && d.IsOptional {
			continue
		}
		idx, ok := r.IndexOfDirection(d, hideOptional)
		if !ok {
			idx = 0
		}
		out = append(out, NumberedDirection{Step: idx + 1, Direction: d})
	}
	return out
}
