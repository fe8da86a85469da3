package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/service"
)

// promptPassword reads without echo when stdin is a terminal, and falls
// back to a plain line read when input is piped in.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)

		fmt.Fprintln(os.Stderr)

		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}

		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func printDashboard(w io.Writer, stats service.DashboardStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Reservas\t%d\n", stats.TotalReservations)
	fmt.Fprintf(tw, "  Pendientes\t%d\n", stats.PendingReservations)
	fmt.Fprintf(tw, "  Aprobadas\t%d\n", stats.ApprovedReservations)
	fmt.Fprintf(tw, "Espacios\t%d\n", stats.TotalSpaces)
	fmt.Fprintf(tw, "Usuarios\t%d\n", stats.TotalUsers)
	tw.Flush()

	if len(stats.Recent) > 0 {
		fmt.Fprintln(w, "\nÚltimas reservas:")
		printReservations(w, stats.Recent)
	}
}

func printReservations(w io.Writer, list []entity.Reservation) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tESPACIO\tUSUARIO\tFECHA\tHORARIO\tESTADO")

	for _, r := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s-%s\t%s\n",
			r.ID, r.SpaceName, r.UserName, r.Date, r.StartTime, r.EndTime, r.Status)
	}

	tw.Flush()
}

func printSpaces(w io.Writer, list []entity.Space) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNOMBRE\tTIPO\tUBICACIÓN\tCAPACIDAD")

	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Type, s.Location, s.Capacity)
	}

	tw.Flush()
}

func printUsers(w io.Writer, list []entity.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNOMBRE\tEMAIL\tROL")

	for _, u := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Role)
	}

	tw.Flush()
}

func printRoles(w io.Writer, list []entity.Role) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNOMBRE")

	for _, r := range list {
		fmt.Fprintf(tw, "%d\t%s\n", r.ID, r.Name)
	}

	tw.Flush()
}

func printAvailability(w io.Writer, a entity.Availability) {
	if a.Available {
		fmt.Fprintln(w, "Disponible")

		return
	}

	fmt.Fprintln(w, "No disponible:", a.Message)

	if len(a.Conflicts) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "USUARIO\tHORARIO\tESTADO")

	for _, c := range a.Conflicts {
		fmt.Fprintf(tw, "%s\t%s-%s\t%s\n", c.User, c.StartTime, c.EndTime, c.Status)
	}

	tw.Flush()
}
