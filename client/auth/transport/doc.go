// Package transport implements the request pipeline every CRM API call goes
// through: legacy /api/ paths are rewritten to /api/v1/, the stored bearer
// credential is attached unless the caller already set Authorization, and a
// 401 response evicts the credential and redirects to the login page while
// still handing the original response back to the caller.
//
// The pipeline is an ordinary http.RoundTripper, so it is installed by
// constructing an http.Client around it and passing that client to call sites.
package transport
