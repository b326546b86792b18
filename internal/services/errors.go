package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRecipe is returned when a recipe fails models.Recipe.Validate.
	// The validator's error is wrapped alongside it.
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrRecipeNotFound is returned when no recipe has the requested ID.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrDuplicateRecipe is returned by Add when the ID is already in the catalog.
	ErrDuplicateRecipe = errors.New("recipe already exists")
)

// PersistenceError reports a failed save or load. The in-memory catalog is
// left as it was before the failing call.
type PersistenceError struct {
	Op  string // "save" or "load"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s recipes: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
