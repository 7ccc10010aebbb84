// Package store defines the key-value storage boundary that holds the session
// credential and the user's display preferences.
//
// Two implementations ship with the package: an in-memory store for tests and
// short-lived processes, and a FileStore that persists a JSON document through
// github.com/viant/afs so the credential survives process restarts.
package store
