package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"recipebox/internal/models"
	"recipebox/internal/repositories"
	"recipebox/pkg/fold"

	"github.com/google/uuid"
)

// RecipeStore owns the recipe catalog: an ordered list of recipes kept in
// insertion order, persisted as a whole through a DocumentStore after every
// accepted change. Recipes are identified by ID only; positions are not stable
// across mutations.
//
// Reads and writes are serialized by a RWMutex. A mutation holds the write lock
// across its save, so saves never interleave.
type RecipeStore struct {
	docs    repositories.DocumentStore
	recipes []models.Recipe
	mu      sync.RWMutex

	subs    map[int]func(Event)
	nextSub int
	subMu   sync.Mutex
}

// NewRecipeStore creates a RecipeStore holding seed until Load finds a saved catalog.
func NewRecipeStore(docs repositories.DocumentStore, seed []models.Recipe) *RecipeStore {
	recipes := make([]models.Recipe, 0, len(seed))
	for _, r := range seed {
		recipes = append(recipes, r.Clone())
	}
	return &RecipeStore{
		docs:    docs,
		recipes: recipes,
		subs:    make(map[int]func(Event)),
	}
}

// Recipes returns the whole catalog in order.
func (s *RecipeStore) Recipes() []models.Recipe {
	return s.filter(func(models.Recipe) bool { return true })
}

// Len returns the number of recipes in the catalog.
func (s *RecipeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// RecipesByCategory returns the recipes in category, in catalog order.
func (s *RecipeStore) RecipesByCategory(category models.Category) []models.Recipe {
	return s.filter(func(r models.Recipe) bool {
		return r.MainInformation.Category == category
	})
}

// FavoriteRecipes returns the favorited recipes, in catalog order.
func (s *RecipeStore) FavoriteRecipes() []models.Recipe {
	return s.filter(func(r models.Recipe) bool {
		return r.IsFavorite
	})
}

// Search returns the recipes whose name, description or author contains query,
// ignoring case and accents, in catalog order.
func (s *RecipeStore) Search(query string) []models.Recipe {
	needle := fold.String(query)
	return s.filter(func(r models.Recipe) bool {
		info := r.MainInformation
		for _, field := range []string{info.Name, info.Description, info.Author} {
			if fold.Contains(field, needle) {
				return true
			}
		}
		return false
	})
}

// filter returns copies of the recipes matching keep. The catalog is not modified.
func (s *RecipeStore) filter(keep func(models.Recipe) bool) []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Get returns the recipe with id.
func (s *RecipeStore) Get(id uuid.UUID) (models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfID(id)
	if i < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	return s.recipes[i].Clone(), nil
}

// IndexOf returns the position of the recipe with the same ID as recipe.
// Content is not compared.
func (s *RecipeStore) IndexOf(recipe models.Recipe) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfID(recipe.ID)
	return i, i >= 0
}

func (s *RecipeStore) indexOfID(id uuid.UUID) int {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends recipe to the end of the catalog and saves. An invalid recipe is
// rejected with ErrInvalidRecipe and the catalog is unchanged. A recipe with a
// nil ID is given a new one, written back to recipe only once the save
// succeeds. If the save fails the recipe is not kept.
func (s *RecipeStore) Add(ctx context.Context, recipe *models.Recipe) error {
	if err := recipe.Validate(); err != nil {
		log.Printf("Rejected recipe %q: %v", recipe.MainInformation.Name, err)
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}
	added := recipe.Clone()
	if added.ID == uuid.Nil {
		added.ID = uuid.New()
	}

	s.mu.Lock()
	if s.indexOfID(added.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateRecipe, added.ID)
	}
	s.recipes = append(s.recipes, added)
	if err := s.saveLocked(ctx); err != nil {
		s.recipes = s.recipes[:len(s.recipes)-1]
		s.mu.Unlock()
		return err
	}
	count := len(s.recipes)
	s.mu.Unlock()

	recipe.ID = added.ID
	log.Printf("Added recipe %s (%s)", added.MainInformation.Name, added.ID)
	s.publish(Event{Kind: EventAdded, Recipe: added.Clone(), Count: count})
	return nil
}

// Update replaces the stored recipe that has recipe's ID and saves.
func (s *RecipeStore) Update(ctx context.Context, recipe *models.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
	}

	s.mu.Lock()
	i := s.indexOfID(recipe.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRecipeNotFound, recipe.ID)
	}
	previous := s.recipes[i]
	s.recipes[i] = recipe.Clone()
	if err := s.saveLocked(ctx); err != nil {
		s.recipes[i] = previous
		s.mu.Unlock()
		return err
	}
	count := len(s.recipes)
	s.mu.Unlock()

	s.publish(Event{Kind: EventUpdated, Recipe: recipe.Clone(), Count: count})
	return nil
}

// SetFavorite sets the favorite flag of the recipe with id and saves.
// It returns the recipe as stored.
func (s *RecipeStore) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (models.Recipe, error) {
	return s.changeFavorite(ctx, id, func(bool) bool { return favorite })
}

// ToggleFavorite flips the favorite flag of the recipe with id and saves.
func (s *RecipeStore) ToggleFavorite(ctx context.Context, id uuid.UUID) (models.Recipe, error) {
	return s.changeFavorite(ctx, id, func(current bool) bool { return !current })
}

func (s *RecipeStore) changeFavorite(ctx context.Context, id uuid.UUID, next func(bool) bool) (models.Recipe, error) {
	s.mu.Lock()
	i := s.indexOfID(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	previous := s.recipes[i].IsFavorite
	s.recipes[i].IsFavorite = next(previous)
	if err := s.saveLocked(ctx); err != nil {
		s.recipes[i].IsFavorite = previous
		s.mu.Unlock()
		return models.Recipe{}, err
	}
	changed := s.recipes[i].Clone()
	count := len(s.recipes)
	s.mu.Unlock()

	s.publish(Event{Kind: EventFavoriteChanged, Recipe: changed.Clone(), Count: count})
	return changed, nil
}

// Remove deletes the recipe with id from the catalog and saves.
func (s *RecipeStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	i := s.indexOfID(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	previous := s.recipes
	removed := s.recipes[i]
	next := make([]models.Recipe, 0, len(s.recipes)-1)
	next = append(next, s.recipes[:i]...)
	next = append(next, s.recipes[i+1:]...)
	s.recipes = next
	if err := s.saveLocked(ctx); err != nil {
		s.recipes = previous
		s.mu.Unlock()
		return err
	}
	count := len(s.recipes)
	s.mu.Unlock()

	log.Printf("Removed recipe %s (%s)", removed.MainInformation.Name, removed.ID)
	s.publish(Event{Kind: EventRemoved, Recipe: removed.Clone(), Count: count})
	return nil
}

// Save writes the whole catalog as a JSON array, replacing the previous document.
func (s *RecipeStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *RecipeStore) saveLocked(ctx context.Context) error {
	recipes := s.recipes
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("failed to encode recipes: %w", err)}
	}
	if err := s.docs.Write(ctx, data); err != nil {
		log.Printf("Error saving %d recipes: %v", len(recipes), err)
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Load replaces the catalog with the saved one. When nothing has been saved
// yet the catalog keeps its seed recipes and Load returns nil. On any other
// failure the catalog is left untouched.
func (s *RecipeStore) Load(ctx context.Context) error {
	data, err := s.docs.Read(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoDocument) {
			log.Printf("No saved recipes found, keeping %d sample recipes", s.Len())
			return nil
		}
		return &PersistenceError{Op: "load", Err: err}
	}

	var loaded []models.Recipe
	if err := json.Unmarshal(data, &loaded); err != nil {
		return &PersistenceError{Op: "load", Err: fmt.Errorf("failed to decode recipes: %w", err)}
	}
	if loaded == nil {
		loaded = []models.Recipe{}
	}
	if err := checkLoaded(loaded); err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}

	s.mu.Lock()
	s.recipes = loaded
	count := len(loaded)
	s.mu.Unlock()

	log.Printf("Loaded %d recipes", count)
	s.publish(Event{Kind: EventLoaded, Count: count})
	return nil
}

// checkLoaded rejects a decoded catalog that reuses an ID or holds a recipe
// without a known category.
func checkLoaded(recipes []models.Recipe) error {
	seen := make(map[uuid.UUID]struct{}, len(recipes))
	for i, r := range recipes {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("recipe %d: duplicate id %s", i, r.ID)
		}
		seen[r.ID] = struct{}{}
		if !r.MainInformation.Category.IsKnown() {
			return fmt.Errorf("recipe %d (%s): missing category", i, r.ID)
		}
	}
	return nil
}
