// Package mock provides an in-process CRM API that facilitates testing of the
// client-side session layer: login, registration, current user and a small
// customer resource, all protected by HS256 bearer tokens.
package mock
