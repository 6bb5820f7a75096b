package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/techfit/techfit-backend/internal/config"
)

// Schema runner for the migrations under migrations/ (modalidades, alunos,
// funcionarios, matriculas) against DATABASE_URL.
func main() {
	dir := flag.String("dir", "migrations", "directory holding the SQL migration files")
	flag.Usage = usage
	flag.Parse()

	if err := run(*dir, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	cfg := config.Load()
	m, err := migrate.New("file://"+dir, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	switch args[0] {
	case "up":
		return report(m.Up(), "schema is up to date")
	case "down":
		return report(m.Down(), "schema torn down")
	case "steps":
		if len(args) < 2 {
			return errors.New("steps requires a count (negative rolls back)")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		return report(m.Steps(n), fmt.Sprintf("applied %d step(s)", n))
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := m.Force(v); err != nil {
			return err
		}
		fmt.Printf("forced version to %d\n", v)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate [-dir path] <up | down | steps <n> | version | force <v>>")
	flag.PrintDefaults()
}

// report collapses migrate.ErrNoChange into a friendly no-op message.
func report(err error, done string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("no change")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(done)
	return nil
}
