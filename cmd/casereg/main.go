package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/casereg/internal/cli"
	"github.com/alexanderramin/casereg/internal/db"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/alexanderramin/casereg/internal/service"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.casereg/casereg.db
	dbPath := os.Getenv("CASEREG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".casereg", "casereg.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// The TUI owns the terminal, so logs only go to a file when asked for.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("CASEREG_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	gwCfg := gateway.LoadConfig()
	var gwObserver gateway.Observer = gateway.NoopObserver{}
	if gwCfg.LogCalls {
		gwObserver = gateway.NewLogObserver(logOut)
	}
	client := gateway.NewClient(gwCfg, gwObserver)

	ttl := service.DefaultReferenceTTL
	if v := os.Getenv("CASEREG_REFERENCE_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	useCaseObserver := service.NewLogUseCaseObserver(logOut)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		References: service.NewReferenceService(
			client, repository.NewSQLiteReferenceCacheRepo(database), ttl, useCaseObserver),
		Submissions: service.NewSubmissionService(
			client, repository.NewSQLiteSubmissionRepo(database), uow, useCaseObserver),
		DispatchObserver: wizard.NewLogDispatchObserver(logOut),
		ReferenceTTL:     ttl,
		HistoryPath:      cli.DefaultHistoryPath(),
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
