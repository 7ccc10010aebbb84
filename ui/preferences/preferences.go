// Package preferences persists display preferences next to the credential.
package preferences

import (
	"fmt"

	"github.com/viant/crm/client/auth/store"
)

// View is a listing presentation.
type View string

const (
	Table View = "table"
	Cards View = "cards"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v == Table || v == Cards
}

// Other returns the opposite view.
func (v View) Other() View {
	if v == Table {
		return Cards
	}
	return Table
}

type Preferences struct {
	store store.Store
}

func New(s store.Store) *Preferences {
	return &Preferences{store: s}
}

// Current returns the saved view, or fallback when none or invalid is saved.
func (p *Preferences) Current(fallback View) View {
	if saved, ok := p.store.Get(store.ViewModeKey); ok && View(saved).Valid() {
		return View(saved)
	}
	if !fallback.Valid() {
		return Table
	}
	return fallback
}

// SetView saves view.
func (p *Preferences) SetView(view View) error {
	if !view.Valid() {
		return fmt.Errorf("invalid view: %q", view)
	}
	return p.store.Set(store.ViewModeKey, string(view))
}

// Toggle switches to the other view, saves and returns it.
func (p *Preferences) Toggle(fallback View) (View, error) {
	next := p.Current(fallback).Other()
	return next, p.SetView(next)
}

// Classes returns the body classes for the saved theme and density.
func (p *Preferences) Classes() []string {
	var ret []string
	if theme, ok := p.store.Get(store.ThemeKey); ok && theme != "" {
		ret = append(ret, "theme-"+theme)
	}
	if density, ok := p.store.Get(store.DensityKey); ok && density != "" {
		ret = append(ret, "density-"+density)
	}
	return ret
}
