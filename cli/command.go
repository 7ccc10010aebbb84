package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/crm/client/api"
	"github.com/viant/crm/client/auth"
	"github.com/viant/crm/ui/export"
	"github.com/viant/crm/ui/format"
	"github.com/viant/crm/ui/notify"
	"github.com/viant/crm/ui/preferences"
)

// Route paths declared by commands.
const (
	customersRoute = "/clientes"
	registerRoute  = "/registrar"
	accountRoute   = "/minha-conta"
)

type LoginCommand struct {
	Username string `short:"U" long:"username" description:"user name" required:"true"`
	Password string `short:"P" long:"password" env:"CRM_PASSWORD" description:"password" required:"true"`
	runner   *Runner
}

func (c *LoginCommand) Execute(_ []string) error {
	client, err := c.runner.start("")
	if err != nil {
		return err
	}
	client.Start(client.Options.LoginPath)
	resp, err := client.Session.Login(c.runner.ctx, c.Username, c.Password)
	if err != nil {
		return err
	}
	name := c.Username
	if resp.Usuario != nil && resp.Usuario.NomeCompleto != "" {
		name = resp.Usuario.NomeCompleto
	}
	c.runner.printf("logged in as %s\n", name)
	return nil
}

type LogoutCommand struct {
	runner *Runner
}

func (c *LogoutCommand) Execute(_ []string) error {
	client, err := c.runner.start("")
	if err != nil {
		return err
	}
	if err = client.Session.Logout(); err != nil {
		return err
	}
	c.runner.printf("logged out\n")
	return nil
}

type RegisterCommand struct {
	Username string `short:"U" long:"username" description:"user name" required:"true"`
	Email    string `short:"e" long:"email" description:"e-mail" required:"true"`
	Name     string `short:"n" long:"name" description:"full name"`
	Password string `short:"P" long:"password" env:"CRM_PASSWORD" description:"password" required:"true"`
	runner   *Runner
}

func (c *RegisterCommand) Execute(_ []string) error {
	client, err := c.runner.start(registerRoute)
	if err != nil {
		return err
	}
	user, err := client.Session.Register(c.runner.ctx, &auth.NewUser{
		Username:     c.Username,
		Email:        c.Email,
		NomeCompleto: c.Name,
		Senha:        c.Password,
	})
	if err != nil {
		return err
	}
	c.runner.printf("registered %s (id %d)\n", user.Username, user.ID)
	return nil
}

type StatusCommand struct {
	runner *Runner
}

func (c *StatusCommand) Execute(_ []string) error {
	client, err := c.runner.start("")
	if err != nil {
		return err
	}
	claims, err := client.Session.Claims()
	switch {
	case errors.Is(err, auth.ErrNoCredential):
		c.runner.printf("not logged in\n")
		return nil
	case errors.Is(err, auth.ErrOpaqueToken):
		c.runner.printf("logged in (opaque credential)\n")
		return nil
	case err != nil:
		return err
	}
	c.runner.printf("logged in as %s\n", claims.Subject)
	if !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired"
		}
		c.runner.printf("expires %s (%s)\n", format.Date(claims.ExpiresAt, format.DefaultDateLayout), state)
	}
	return nil
}

type MeCommand struct {
	runner *Runner
}

func (c *MeCommand) Execute(_ []string) error {
	client, err := c.runner.start(accountRoute)
	if err != nil {
		return err
	}
	user, err := client.Session.Me(c.runner.ctx)
	if err != nil {
		return c.runner.session(err)
	}
	c.runner.printf("%s <%s> %s\n", user.Username, user.Email, user.Role)
	return nil
}

type ClientesCommand struct {
	List       ListCommand       `command:"list" description:"list customers"`
	Search     SearchCommand     `command:"search" description:"search customers by name"`
	Get        GetCommand        `command:"get" description:"show one customer"`
	Deactivate DeactivateCommand `command:"deactivate" description:"deactivate a customer"`
}

type ListCommand struct {
	runner *Runner
}

func (c *ListCommand) Execute(_ []string) error {
	client, err := c.runner.start(customersRoute)
	if err != nil {
		return err
	}
	customers, err := client.API.Customers().List(c.runner.ctx)
	if err != nil {
		return c.runner.session(err)
	}
	for i := range customers {
		c.runner.printf("%s\n", customerLine(&customers[i]))
	}
	return nil
}

type SearchCommand struct {
	Args struct {
		Query string `positional-arg-name:"query"`
	} `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *SearchCommand) Execute(_ []string) error {
	client, err := c.runner.start(customersRoute)
	if err != nil {
		return err
	}
	matches, err := client.API.Customers().Search(c.runner.ctx, c.Args.Query)
	if err != nil {
		return c.runner.session(err)
	}
	for _, match := range matches {
		c.runner.printf("%d\t%s\t%s\n", match.ID, match.Nome, format.Currency(match.ValorMensal))
	}
	return nil
}

type GetCommand struct {
	Args struct {
		ID int `positional-arg-name:"id"`
	} `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *GetCommand) Execute(_ []string) error {
	client, err := c.runner.start(customersRoute + "/" + strconv.Itoa(c.Args.ID))
	if err != nil {
		return err
	}
	customer, err := client.API.Customers().Get(c.runner.ctx, c.Args.ID)
	if err != nil {
		return c.runner.session(err)
	}
	c.runner.printf("%s\n", customerLine(customer))
	if customer.Endereco != "" {
		c.runner.printf("%s %s\n", customer.Endereco, format.CEP(customer.CEP))
	}
	return nil
}

type DeactivateCommand struct {
	Args struct {
		ID int `positional-arg-name:"id"`
	} `positional-args:"yes" required:"yes"`
	runner *Runner
}

func (c *DeactivateCommand) Execute(_ []string) error {
	client, err := c.runner.start(customersRoute)
	if err != nil {
		return err
	}
	var resp map[string]any
	if err = client.API.Delete(c.runner.ctx, "/clientes/"+strconv.Itoa(c.Args.ID), &resp); err != nil {
		return c.runner.session(err)
	}
	c.runner.printf("%s\n", notify.FromResponse(resp).Message)
	return nil
}

type ExportCommand struct {
	Format string `short:"f" long:"format" choice:"csv" choice:"xlsx" default:"csv" description:"export format"`
	Output string `short:"o" long:"output" description:"destination (path or afs URL), - for stdout"`
	runner *Runner
}

func (c *ExportCommand) Execute(_ []string) error {
	client, err := c.runner.start(customersRoute)
	if err != nil {
		return err
	}
	customers, err := client.API.Customers().List(c.runner.ctx)
	if err != nil {
		return c.runner.session(err)
	}
	buffer := &bytes.Buffer{}
	if err = export.Write(buffer, c.Format, customerRows(customers), customerHeaders); err != nil {
		if errors.Is(err, export.ErrNoData) {
			c.runner.printf("%s\n", notify.New("Nenhum dado para exportar", notify.Warning).Message)
		}
		return err
	}
	if c.Output == "-" {
		_, err = c.runner.out.Write(buffer.Bytes())
		return err
	}
	dest := c.Output
	if dest == "" {
		dest = export.FileName("clientes", c.Format)
	}
	if !strings.Contains(dest, "://") {
		if dest, err = filepath.Abs(dest); err != nil {
			return err
		}
	}
	if err = afs.New().Upload(c.runner.ctx, dest, 0o644, buffer); err != nil {
		return fmt.Errorf("failed to write export %v: %w", dest, err)
	}
	c.runner.printf("%s: %s\n", notify.New("Exportação concluída", notify.Success).Message, dest)
	return nil
}

type ViewCommand struct {
	Args struct {
		View string `positional-arg-name:"table|cards|toggle"`
	} `positional-args:"yes"`
	runner *Runner
}

func (c *ViewCommand) Execute(_ []string) error {
	client, err := c.runner.start(customersRoute)
	if err != nil {
		return err
	}
	prefs := client.Preferences
	view := prefs.Current(preferences.Table)
	switch arg := c.Args.View; arg {
	case "":
	case "toggle":
		if view, err = prefs.Toggle(preferences.Table); err != nil {
			return err
		}
	default:
		view = preferences.View(arg)
		if !view.Valid() {
			return fmt.Errorf("unsupported view: %v", arg)
		}
		if err = prefs.SetView(view); err != nil {
			return err
		}
	}
	c.runner.printf("view: %s\n", view)
	if classes := prefs.Classes(); len(classes) > 0 {
		c.runner.printf("classes: %s\n", strings.Join(classes, " "))
	}
	return nil
}

var customerHeaders = []string{"id", "nome", "email", "telefone", "cpf", "valor_mensal", "ativo"}

func customerRows(customers []api.Customer) export.Rows {
	var ret export.Rows
	for _, customer := range customers {
		row := map[string]any{
			"id":       customer.ID,
			"nome":     customer.Nome,
			"email":    customer.Email,
			"telefone": format.Phone(customer.Telefone),
			"cpf":      format.CPF(customer.CPF),
			"ativo":    customer.Ativo,
		}
		if customer.ValorMensal != nil {
			row["valor_mensal"] = format.Currency(*customer.ValorMensal)
		}
		ret = append(ret, row)
	}
	return ret
}

func customerLine(customer *api.Customer) string {
	line := fmt.Sprintf("%d\t%s\t%s\t%s", customer.ID, customer.Nome, format.CPF(customer.CPF), format.Phone(customer.Telefone))
	if customer.ValorMensal != nil {
		line += "\t" + format.Currency(*customer.ValorMensal)
	}
	if !customer.Ativo {
		line += "\tinativo"
	}
	return line
}
