package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ucampus/reservas-cli/internal/clients/backend"
	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/service"
	"github.com/ucampus/reservas-cli/internal/session"
	"github.com/ucampus/reservas-cli/pkg/config"
	"github.com/ucampus/reservas-cli/pkg/logger"
)

const usage = `usage: reservas [-env FILE] COMMAND [ARGS]

commands:
  login           sign in and store the session
  logout          destroy the stored session
  register        create an account
  dashboard       aggregate counters and recent reservations
  reservas        list and manage reservations
  espacios        list and manage spaces
  usuarios        list and manage users
  roles           list and manage roles
  disponibilidad  check whether a space is free for a time window
  historial       reservation history per user or per space
  monitor         keep the dashboard refreshed until interrupted
`

type app struct {
	cfg      config.Config
	log      *slog.Logger
	store    *session.Store
	sessions *session.Manager
	svc      *service.Service
}

func main() {
	envPath := flag.String("env", ".env", "path to the environment file")

	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	if err := run(ctx, *envPath, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", entity.UserMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, envPath string, args []string) error {
	if len(args) == 0 {
		flag.Usage()

		return errors.New("missing command")
	}

	cfg, err := config.New(envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	store := session.NewStore(cfg.SessionFile)
	if err := store.Load(); err != nil {
		return err
	}

	api := backend.NewClient(cfg, store)
	api.OnUnauthorized(func() {
		if err := store.Clear(); err != nil {
			l.Error("clear session after 401", "error", err)
		}
	})

	sessions := session.NewManager(api, store, l)
	svc := service.New(api, sessions, l)

	a := &app{cfg: cfg, log: l, store: store, sessions: sessions, svc: svc}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout()
	case "register":
		return a.cmdRegister(ctx, rest)
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "reservas":
		return a.cmdReservations(ctx, rest)
	case "espacios":
		return a.cmdSpaces(ctx, rest)
	case "usuarios":
		return a.cmdUsers(ctx, rest)
	case "roles":
		return a.cmdRoles(ctx, rest)
	case "disponibilidad":
		return a.cmdAvailability(ctx, rest)
	case "historial":
		return a.cmdHistory(ctx, rest)
	case "monitor":
		return a.cmdMonitor(ctx)
	default:
		flag.Usage()

		return fmt.Errorf("unknown command %q", cmd)
	}
}
