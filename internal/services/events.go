package services

import (
	"log"
	"slices"
	"time"

	"recipebox/internal/models"
)

// EventKind names a change to the recipe catalog.
type EventKind string

const (
	EventAdded           EventKind = "recipe.added"
	EventUpdated         EventKind = "recipe.updated"
	EventRemoved         EventKind = "recipe.removed"
	EventFavoriteChanged EventKind = "recipe.favorite_changed"
	EventLoaded          EventKind = "recipes.loaded"
)

// Event describes one accepted change. Recipe is the zero value for EventLoaded.
type Event struct {
	Kind   EventKind
	Recipe models.Recipe
	Count  int // catalog size after the change
	At     time.Time
}

// Subscribe registers fn to be called after every change has been saved.
// Calls happen synchronously on the goroutine that made the change, outside
// the store's lock, so fn may query the store. The returned func unsubscribes.
func (s *RecipeStore) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *RecipeStore) publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	subs := make([]func(Event), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		s.notify(fn, e)
	}
}

// notify isolates subscribers from each other: a panicking subscriber is logged and skipped.
func (s *RecipeStore) notify(fn func(Event), e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recipe event subscriber panicked on %s: %v", e.Kind, r)
		}
	}()
	fn(e)
}
