package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	var hooked []string
	loc := NewLocation("/clientes")
	loc.OnNavigate = func(location string) { hooked = append(hooked, location) }

	assert.Equal(t, "/clientes", loc.Path())
	assert.False(t, loc.Redirected(LoginPath))

	loc.Navigate(LoginPath)
	loc.Navigate(LoginPath)
	assert.Equal(t, LoginPath, loc.Path())
	assert.Equal(t, 2, loc.Count(LoginPath))
	assert.Equal(t, []string{LoginPath, LoginPath}, hooked)

	loc.Replace("/clientes")
	assert.Equal(t, "/clientes", loc.Path())
	assert.Equal(t, 0, loc.Count("/clientes"))
}

func TestLocation_Concurrent(t *testing.T) {
	loc := NewLocation("/")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc.Navigate(LoginPath)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, loc.Count(LoginPath))
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	var n Navigator = NavigatorFunc(func(location string) { got = location })
	n.Navigate("/login")
	assert.Equal(t, "/login", got)
}
