// Package navigation models where the client currently "is", replacing the
// browser's location object. Redirects to the login page are expressed as
// Navigate calls so that callers and tests can observe them.
package navigation

import "sync"

// LoginPath is the default login destination.
const LoginPath = "/login"

// Navigator moves the client to location. Implementations must tolerate
// repeated navigation to the same destination.
type Navigator interface {
	Navigate(location string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(location string)

func (f NavigatorFunc) Navigate(location string) {
	f(location)
}

// Location records the current location and the navigation history count.
type Location struct {
	mux        sync.RWMutex
	path       string
	counts     map[string]int
	OnNavigate func(location string)
}

// NewLocation returns a Location starting at path.
func NewLocation(path string) *Location {
	return &Location{path: path, counts: map[string]int{}}
}

func (l *Location) Navigate(location string) {
	l.mux.Lock()
	l.path = location
	l.counts[location]++
	hook := l.OnNavigate
	l.mux.Unlock()
	if hook != nil {
		hook(location)
	}
}

// Replace sets the current location without recording a navigation.
func (l *Location) Replace(location string) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.path = location
}

// Path returns the current location.
func (l *Location) Path() string {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return l.path
}

// Count returns how many times location was navigated to.
func (l *Location) Count(location string) int {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return l.counts[location]
}

// Redirected reports whether any navigation to location happened.
func (l *Location) Redirected(location string) bool {
	return l.Count(location) > 0
}
