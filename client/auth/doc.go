// Package auth manages the client session: logging in stores the bearer
// credential, logging out or any authentication failure evicts it and
// redirects to the login page.
//
// The request pipeline lives in the transport sub-package, the startup gate in
// guard, and the storage and navigation boundaries in store and navigation.
package auth
