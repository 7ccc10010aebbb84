// Package crm assembles the client-side session layer of the CRM: a
// credential store, the authenticated request pipeline, the startup session
// guard and the API client built on top of them.
//
// A process creates one Client at startup and passes its HTTP client (or the
// API wrapper) to every call site instead of relying on a global transport:
//
//	cli, _ := crm.NewClient(ctx, &crm.ClientOptions{BaseURL: "https://crm.example"})
//	if cli.Start("/clientes") == guard.RedirectToLogin {
//		// cli.Location.Path() is now "/login"
//	}
//	list, err := cli.API.Customers().List(ctx)
package crm
