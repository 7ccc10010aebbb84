package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/crm"
	"github.com/viant/crm/client/auth/guard"
	"github.com/viant/crm/client/auth/store"
)

// ErrLoginRequired is returned when a command needs a credential the store does not hold.
var ErrLoginRequired = errors.New("login required: run crm login")

// Runner executes crm commands against one client.
type Runner struct {
	ctx     context.Context
	out     io.Writer
	options *Options
	client  *crm.Client
}

// New creates a runner writing command output to out.
func New(out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{ctx: context.Background(), out: out}
}

// Run parses args and executes the selected command.
func Run(args []string) error {
	return New(os.Stdout).Run(args)
}

func (r *Runner) Run(args []string) error {
	return r.RunWithOptions(args, &Options{})
}

// RunWithOptions is Run with preset options; command line values win over them.
func (r *Runner) RunWithOptions(args []string, options *Options) error {
	r.options = options
	r.client = nil
	options.bind(r)
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// start builds the client and runs the session guard for route. An empty
// route skips the guard.
func (r *Runner) start(route string) (*crm.Client, error) {
	if r.client == nil {
		options, err := r.options.clientOptions(r.ctx)
		if err != nil {
			return nil, err
		}
		if r.client, err = crm.NewClient(r.ctx, options); err != nil {
			return nil, err
		}
	}
	if route == "" {
		return r.client, nil
	}
	if r.client.Start(route) == guard.RedirectToLogin {
		return nil, ErrLoginRequired
	}
	return r.client, nil
}

// session turns a failure that cost the credential into ErrLoginRequired.
func (r *Runner) session(err error) error {
	if err == nil || r.client == nil || store.HasToken(r.client.Store) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrLoginRequired, err)
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
