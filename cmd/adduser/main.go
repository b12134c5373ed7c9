// Command adduser creates an account from the terminal, sharing the server's
// config, migrations and registration path. Handy for bootstrapping a
// deployment before the registration form is reachable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"database/sql"

	"github.com/marziehyaghobi/cs50-final-project/internal/common"
	"github.com/marziehyaghobi/cs50-final-project/internal/flagx"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/config"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/repositories/repomanager"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "adduser: %v\n", err)
		os.Exit(1)
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run() error {
	cfg := config.LoadConfig()

	var username string
	args := flagx.FilterArgs(os.Args[1:], []string{"-u"})
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.StringVar(&username, "u", "", "username to create")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if username == "" {
		return errors.New("usage: adduser -u <username>")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	user, err := services.NewUserService(db, rm).Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return errors.New("username and password are required")
		case errors.Is(err, common.ErrorUsernameTaken):
			return fmt.Errorf("username %q is already taken", username)
		default:
			return err
		}
	}

	fmt.Printf("created user %q (id %d)\n", user.Username, user.ID)
	return nil
}
