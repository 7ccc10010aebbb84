package cli

import (
	"context"

	"github.com/viant/crm"
)

// Options are the crm command line options.
type Options struct {
	Config string `short:"c" long:"config" description:"options YAML location (path or afs URL)"`
	crm.ClientOptions

	Login    LoginCommand    `command:"login" description:"authenticate and store the credential"`
	Logout   LogoutCommand   `command:"logout" description:"evict the stored credential"`
	Register RegisterCommand `command:"register" description:"create an account"`
	Status   StatusCommand   `command:"status" description:"show the stored credential"`
	Me       MeCommand       `command:"me" description:"show the current user"`
	Clientes ClientesCommand `command:"clientes" description:"customer operations"`
	Export   ExportCommand   `command:"export" description:"export customers as csv or xlsx"`
	View     ViewCommand     `command:"view" description:"show or change the customer list view"`
}

func (o *Options) bind(r *Runner) {
	o.Login.runner = r
	o.Logout.runner = r
	o.Register.runner = r
	o.Status.runner = r
	o.Me.runner = r
	o.Clientes.List.runner = r
	o.Clientes.Search.runner = r
	o.Clientes.Get.runner = r
	o.Clientes.Deactivate.runner = r
	o.Export.runner = r
	o.View.runner = r
}

// clientOptions loads the config file, if any, and lets command line values win.
func (o *Options) clientOptions(ctx context.Context) (*crm.ClientOptions, error) {
	ret, err := crm.LoadOptions(ctx, o.Config)
	if err != nil {
		return nil, err
	}
	if o.BaseURL != "" {
		ret.BaseURL = o.BaseURL
	}
	if o.StoreURL != "" {
		ret.StoreURL = o.StoreURL
	}
	if o.LoginPath != "" {
		ret.LoginPath = o.LoginPath
	}
	if o.TimeoutMs > 0 {
		ret.TimeoutMs = o.TimeoutMs
	}
	ret.Store = o.Store
	ret.Transport = o.Transport
	ret.Logger = o.Logger
	return ret, nil
}
