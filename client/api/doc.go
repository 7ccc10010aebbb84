// Package api is a small JSON client for the CRM REST API. It expects an
// http.Client whose transport is the authenticated request pipeline, so
// credential handling never appears here.
package api
