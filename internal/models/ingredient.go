package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Unit is the measure an ingredient quantity is expressed in.
type Unit string

const (
	UnitOunces      Unit = "Ounces"
	UnitGrams       Unit = "Grams"
	UnitPounds      Unit = "Pounds"
	UnitCups        Unit = "Cups"
	UnitTablespoons Unit = "Tablespoons"
	UnitTeaspoons   Unit = "Teaspoons"
	UnitNone        Unit = "No units"
)

// Units lists every unit in picker order.
var Units = []Unit{UnitOunces, UnitGrams, UnitPounds, UnitCups, UnitTablespoons, UnitTeaspoons, UnitNone}

// ParseUnit maps a display name back to its Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.IsKnown() {
		return "", fmt.Errorf("unknown unit %q", s)
	}
	return u, nil
}

// IsKnown reports whether u is one of the defined units.
func (u Unit) IsKnown() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

func (u Unit) String() string { return string(u) }

// Singular is the display name with its last character dropped ("Cups" -> "Cup").
func (u Unit) Singular() string {
	s := string(u)
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// UnmarshalJSON rejects display names that do not name a unit.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Ingredient is one quantity/unit/name line of a recipe.
type Ingredient struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     Unit    `json:"unit" validate:"unit"`
}

// NewIngredient returns the default line used by the editing form.
func NewIngredient() Ingredient {
	return Ingredient{Quantity: 1, Unit: UnitNone}
}

// Validate checks the ingredient has a name, a non-negative quantity and a known unit.
func (i Ingredient) Validate() error {
	return validate.Struct(i)
}

// Description renders the ingredient for display, e.g. "2 Eggs" or "1 Cup Flour".
// Plural unit lines end with a trailing space ("2.5 Cups Flour ").
// Quantity is compared to 1 exactly.
func (i Ingredient) Description() string {
	quantity := FormatQuantity(i.Quantity)
	if i.Unit == UnitNone {
		if i.Quantity == 1 {
			return quantity + " " + i.Name
		}
		return quantity + " " + i.Name + "s"
	}
	if i.Quantity == 1 {
		return "1 " + i.Unit.Singular() + " " + i.Name
	}
	return quantity + " " + string(i.Unit) + " " + i.Name + " "
}

// FormatQuantity formats q like C's %g: six significant digits with
// insignificant zeros and a bare decimal point removed.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'g', 6, 64)
}
