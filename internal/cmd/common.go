package cmd

import (
	"io"

	"github.com/nkoenig/decpac/internal/config"
	"github.com/nkoenig/decpac/internal/engine"
	"github.com/nkoenig/decpac/internal/liststore"
	"github.com/nkoenig/decpac/internal/machine"
	"github.com/nkoenig/decpac/internal/mutate"
	"github.com/nkoenig/decpac/internal/notify"
	"github.com/nkoenig/decpac/internal/pacman"
)

// app wires the collaborators every subcommand needs.
type app struct {
	cfg      *config.Config
	store    *liststore.Store
	sys      *pacman.System
	resolver *machine.Resolver
	engine   *engine.Engine
	hook     *notify.Hook
}

func newApp(log io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store := liststore.New(cfg.ListsDir)
	sys := &pacman.System{AURHelper: cfg.AURHelper}
	return &app{
		cfg:      cfg,
		store:    store,
		sys:      sys,
		resolver: &machine.Resolver{Override: cfg.Machine, Hostnames: cfg.Machines},
		engine:   &engine.Engine{Store: store, Inventory: sys},
		hook:     &notify.Hook{Command: cfg.SyncCommand, Log: log},
	}, nil
}

// controller builds a MutationController for the given machine scope.
// List-only operations (move) pass an empty scope and never resolve the
// machine at all.
func (a *app) controller(machine string, log io.Writer) *mutate.Controller {
	return &mutate.Controller{
		Store:   a.store,
		Manager: a.sys,
		Notify:  a.hook,
		Machine: machine,
		Log:     log,
	}
}
