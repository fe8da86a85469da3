package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/pkg/job"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")

	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword("Contraseña: ")
	if err != nil {
		return err
	}

	user, err := a.sessions.Login(ctx, *email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Bienvenido, %s (%s)\n", user.FullName(), user.Role)

	return nil
}

func (a *app) cmdLogout() error {
	if err := a.sessions.Logout(); err != nil {
		return err
	}

	fmt.Println("Sesión cerrada")

	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	firstName := fs.String("nombre", "", "first name")
	lastName := fs.String("apellido", "", "last name")
	email := fs.String("email", "", "account email")

	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword("Contraseña: ")
	if err != nil {
		return err
	}

	user := entity.User{FirstName: *firstName, LastName: *lastName, Email: *email}

	if err := a.sessions.Register(ctx, user, password); err != nil {
		return err
	}

	fmt.Println("Cuenta creada, inicia sesión con 'reservas login'")

	return nil
}

func (a *app) cmdDashboard(ctx context.Context) error {
	stats, err := a.svc.Dashboard(ctx)
	if err != nil {
		return err
	}

	printDashboard(os.Stdout, stats)

	return nil
}

func (a *app) cmdReservations(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.svc.Reservations(ctx)
		if err != nil {
			return err
		}

		printReservations(os.Stdout, list)

		return nil

	case "mias":
		list, err := a.svc.MyReservations(ctx)
		if err != nil {
			return err
		}

		printReservations(os.Stdout, list)

		return nil

	case "crear":
		fs := flag.NewFlagSet("reservas crear", flag.ContinueOnError)
		spaceID := fs.Int("espacio", 0, "space id")
		userID := fs.Int("usuario", 0, "book on behalf of this user (admin only)")
		date := fs.String("fecha", "", "date, YYYY-MM-DD")
		start := fs.String("inicio", "", "start time, HH:MM")
		end := fs.String("fin", "", "end time, HH:MM")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		r := entity.Reservation{
			SpaceID:   *spaceID,
			UserID:    *userID,
			Date:      *date,
			StartTime: *start,
			EndTime:   *end,
		}

		if err := a.svc.CreateReservation(ctx, r); err != nil {
			return err
		}

		fmt.Println("Reserva creada")

		return nil

	case "editar":
		fs := flag.NewFlagSet("reservas editar", flag.ContinueOnError)
		id := fs.Int("id", 0, "reservation id")
		spaceID := fs.Int("espacio", 0, "space id")
		date := fs.String("fecha", "", "date, YYYY-MM-DD")
		start := fs.String("inicio", "", "start time, HH:MM")
		end := fs.String("fin", "", "end time, HH:MM")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		current, err := a.svc.Reservations(ctx)
		if err != nil {
			return err
		}

		r, ok := findReservation(current, *id)
		if !ok {
			return entity.ErrNotFound
		}

		if *spaceID != 0 {
			r.SpaceID = *spaceID
		}

		if *date != "" {
			r.Date = *date
		}

		if *start != "" {
			r.StartTime = *start
		}

		if *end != "" {
			r.EndTime = *end
		}

		if err := a.svc.UpdateReservation(ctx, *id, r); err != nil {
			return err
		}

		fmt.Println("Reserva actualizada")

		return nil

	case "aprobar", "rechazar":
		fs := flag.NewFlagSet("reservas "+sub, flag.ContinueOnError)
		id := fs.Int("id", 0, "reservation id")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		to := entity.StatusApproved
		if sub == "rechazar" {
			to = entity.StatusRejected
		}

		if err := a.svc.ChangeReservationStatus(ctx, *id, to); err != nil {
			return err
		}

		fmt.Printf("Reserva %d: %s\n", *id, to)

		return nil

	case "eliminar":
		fs := flag.NewFlagSet("reservas eliminar", flag.ContinueOnError)
		id := fs.Int("id", 0, "reservation id")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		if err := a.svc.DeleteReservation(ctx, *id); err != nil {
			return err
		}

		fmt.Println("Reserva eliminada")

		return nil

	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) cmdSpaces(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.svc.Spaces(ctx)
		if err != nil {
			return err
		}

		printSpaces(os.Stdout, list)

		return nil

	case "crear":
		fs := flag.NewFlagSet("espacios crear", flag.ContinueOnError)
		name := fs.String("nombre", "", "space name")
		typ := fs.String("tipo", entity.SpaceTypeClassroom, "space type")
		location := fs.String("ubicacion", "", "location")
		capacity := fs.Int("capacidad", 0, "capacity")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		sp := entity.Space{Name: *name, Type: *typ, Location: *location, Capacity: *capacity}

		if err := a.svc.CreateSpace(ctx, sp); err != nil {
			return err
		}

		fmt.Println("Espacio creado")

		return nil

	case "editar":
		fs := flag.NewFlagSet("espacios editar", flag.ContinueOnError)
		id := fs.Int("id", 0, "space id")
		name := fs.String("nombre", "", "space name")
		typ := fs.String("tipo", "", "space type")
		location := fs.String("ubicacion", "", "location")
		capacity := fs.Int("capacidad", 0, "capacity")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		current, err := a.svc.GetSpace(ctx, *id)
		if err != nil {
			return err
		}

		if *name != "" {
			current.Name = *name
		}

		if *typ != "" {
			current.Type = *typ
		}

		if *location != "" {
			current.Location = *location
		}

		if *capacity != 0 {
			current.Capacity = *capacity
		}

		if err := a.svc.UpdateSpace(ctx, *id, current); err != nil {
			return err
		}

		fmt.Println("Espacio actualizado")

		return nil

	case "eliminar":
		fs := flag.NewFlagSet("espacios eliminar", flag.ContinueOnError)
		id := fs.Int("id", 0, "space id")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		if err := a.svc.DeleteSpace(ctx, *id); err != nil {
			return err
		}

		fmt.Println("Espacio eliminado")

		return nil

	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.svc.Users(ctx)
		if err != nil {
			return err
		}

		printUsers(os.Stdout, list)

		return nil

	case "crear":
		fs := flag.NewFlagSet("usuarios crear", flag.ContinueOnError)
		firstName := fs.String("nombre", "", "first name")
		lastName := fs.String("apellido", "", "last name")
		email := fs.String("email", "", "account email")
		role := fs.String("rol", entity.RoleUser, "role name")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		password, err := promptPassword("Contraseña: ")
		if err != nil {
			return err
		}

		u := entity.User{FirstName: *firstName, LastName: *lastName, Email: *email, Role: *role}

		if err := a.svc.CreateUser(ctx, u, password); err != nil {
			return err
		}

		fmt.Println("Usuario creado")

		return nil

	case "editar":
		fs := flag.NewFlagSet("usuarios editar", flag.ContinueOnError)
		id := fs.Int("id", 0, "user id")
		firstName := fs.String("nombre", "", "first name")
		lastName := fs.String("apellido", "", "last name")
		email := fs.String("email", "", "account email")
		role := fs.String("rol", "", "role name (admin only)")
		changePassword := fs.Bool("password", false, "prompt for a new password")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		current, err := a.svc.GetUser(ctx, *id)
		if err != nil {
			return err
		}

		if *firstName != "" {
			current.FirstName = *firstName
		}

		if *lastName != "" {
			current.LastName = *lastName
		}

		if *email != "" {
			current.Email = *email
		}

		if *role != "" {
			current.Role = *role
		}

		var password string
		if *changePassword {
			password, err = promptPassword("Nueva contraseña: ")
			if err != nil {
				return err
			}
		}

		if err := a.svc.UpdateUser(ctx, *id, current, password); err != nil {
			return err
		}

		fmt.Println("Usuario actualizado")

		return nil

	case "eliminar":
		fs := flag.NewFlagSet("usuarios eliminar", flag.ContinueOnError)
		id := fs.Int("id", 0, "user id")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		if err := a.svc.DeleteUser(ctx, *id); err != nil {
			return err
		}

		fmt.Println("Usuario eliminado")

		return nil

	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) cmdRoles(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.svc.Roles(ctx)
		if err != nil {
			return err
		}

		printRoles(os.Stdout, list)

		return nil

	case "crear", "editar":
		fs := flag.NewFlagSet("roles "+sub, flag.ContinueOnError)
		id := fs.Int("id", 0, "role id (editar only)")
		name := fs.String("nombre", "", "role name")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		if sub == "crear" {
			if err := a.svc.CreateRole(ctx, *name); err != nil {
				return err
			}

			fmt.Println("Rol creado")

			return nil
		}

		if err := a.svc.UpdateRole(ctx, *id, *name); err != nil {
			return err
		}

		fmt.Println("Rol actualizado")

		return nil

	case "eliminar":
		fs := flag.NewFlagSet("roles eliminar", flag.ContinueOnError)
		id := fs.Int("id", 0, "role id")

		if err := fs.Parse(rest); err != nil {
			return err
		}

		if err := a.svc.DeleteRole(ctx, *id); err != nil {
			return err
		}

		fmt.Println("Rol eliminado")

		return nil

	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) cmdAvailability(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("disponibilidad", flag.ContinueOnError)
	spaceID := fs.Int("espacio", 0, "space id")
	date := fs.String("fecha", "", "date, YYYY-MM-DD")
	start := fs.String("inicio", "", "start time, HH:MM")
	end := fs.String("fin", "", "end time, HH:MM")

	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.svc.CheckAvailability(ctx, *spaceID, *date, *start, *end)
	if err != nil {
		return err
	}

	printAvailability(os.Stdout, result)

	return nil
}

func (a *app) cmdHistory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: historial usuario|espacio -id N")
	}

	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("historial "+sub, flag.ContinueOnError)
	id := fs.Int("id", 0, "user or space id")

	if err := fs.Parse(rest); err != nil {
		return err
	}

	var (
		list []entity.Reservation
		err  error
	)

	switch sub {
	case "usuario":
		list, err = a.svc.UserHistory(ctx, *id)
	case "espacio":
		list, err = a.svc.SpaceHistory(ctx, *id)
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}

	if err != nil {
		return err
	}

	printReservations(os.Stdout, list)

	return nil
}

// cmdMonitor keeps the dashboard on screen, re-reading the session file
// and re-fetching the counters on their intervals until interrupted.
func (a *app) cmdMonitor(ctx context.Context) error {
	if _, err := a.svc.Dashboard(ctx); err != nil {
		return err
	}

	jobs := job.NewService()

	jobs.RegisterJob("session_reconcile", a.cfg.SessionRefreshInterval, a.sessions.Reconcile)

	jobs.RegisterJob("dashboard_refresh", dashboardRefreshInterval, func(ctx context.Context) error {
		stats, err := a.svc.Dashboard(ctx)
		if err != nil {
			return err
		}

		printDashboard(os.Stdout, stats)

		return nil
	})

	jobs.Start(ctx)

	<-ctx.Done()
	jobs.Stop()

	return nil
}

const dashboardRefreshInterval = 30 * time.Second

func findReservation(list []entity.Reservation, id int) (entity.Reservation, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}

	return entity.Reservation{}, false
}
