// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/item-keeper/internal/adapter"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/models"
)

// Usage lists the supported commands.
const Usage = `usage: item-keeper <command> [flags]

commands:
  health
  register -name NAME -email EMAIL -password PASSWORD
  login    -username NAME_OR_EMAIL -password PASSWORD
  list     [-limit N] [-offset N]
  get      ID
  create   -name NAME -category CATEGORY [-description TEXT] [-quantity N] [-price P]
  update   ID [-name NAME] [-category CATEGORY] [-description TEXT] [-quantity N] [-price P]
  delete   ID
`

type commandFunc func(ctx context.Context, args []string) error

// App runs single commands against the server.
type App struct {
	api      adapter.ServerAdapter
	out      io.Writer
	commands map[string]commandFunc
	logger   *logger.Logger
}

// NewApp returns an App that writes command results to out.
func NewApp(api adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, ErrNilServerAdapter
	}

	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]commandFunc{
		"health":   a.health,
		"register": a.register,
		"login":    a.login,
		"list":     a.list,
		"get":      a.get,
		"create":   a.create,
		"update":   a.update,
		"delete":   a.delete,
	}
	return a, nil
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) health(ctx context.Context, _ []string) error {
	if err := a.api.Health(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "ok")
	return err
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := a.newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "account name")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.print(summary)
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := a.newFlagSet("login")
	fs.StringVar(&req.Username, "username", "", "account name or email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) list(ctx context.Context, args []string) error {
	req := models.ListItemsRequest{Limit: models.DefaultListLimit}
	fs := a.newFlagSet("list")
	fs.Uint64Var(&req.Limit, "limit", req.Limit, "page size")
	fs.Uint64Var(&req.Offset, "offset", 0, "items to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.api.ListItems(ctx, req)
	if err != nil {
		return err
	}
	return a.print(items)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseItemID(args)
	if err != nil {
		return err
	}

	item, err := a.api.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return a.print(item)
}

func (a *App) create(ctx context.Context, args []string) error {
	var item models.ItemCreate
	fs := a.newFlagSet("create")
	fs.StringVar(&item.Name, "name", "", "item name")
	fs.StringVar(&item.Description, "description", "", "item description")
	fs.StringVar(&item.Category, "category", "", "item category")
	fs.IntVar(&item.Quantity, "quantity", 0, "quantity in stock")
	fs.Float64Var(&item.Price, "price", 0, "unit price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := a.api.CreateItem(ctx, item)
	if err != nil {
		return err
	}
	return a.print(created)
}

// update sends only the fields whose flags were given.
func (a *App) update(ctx context.Context, args []string) error {
	id, err := parseItemID(args)
	if err != nil {
		return err
	}

	var (
		name, description, category string
		quantity                    int
		price                       float64
	)
	fs := a.newFlagSet("update")
	fs.StringVar(&name, "name", "", "new item name")
	fs.StringVar(&description, "description", "", "new item description")
	fs.StringVar(&category, "category", "", "new item category")
	fs.IntVar(&quantity, "quantity", 0, "new quantity")
	fs.Float64Var(&price, "price", 0, "new unit price")
	if err = fs.Parse(args[1:]); err != nil {
		return err
	}

	var update models.ItemUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = &name
		case "description":
			update.Description = &description
		case "category":
			update.Category = &category
		case "quantity":
			update.Quantity = &quantity
		case "price":
			update.Price = &price
		}
	})
	if update.IsEmpty() {
		return ErrEmptyUpdate
	}

	item, err := a.api.UpdateItem(ctx, id, update)
	if err != nil {
		return err
	}
	return a.print(item)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseItemID(args)
	if err != nil {
		return err
	}

	item, err := a.api.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	return a.print(item)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseItemID reads the positional item id from args[0].
func parseItemID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrMissingItemID
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidItemID, args[0])
	}
	return id, nil
}
