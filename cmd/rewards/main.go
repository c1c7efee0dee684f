package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"customer-rewards/internal/config"
	"customer-rewards/internal/gateway"
	"customer-rewards/internal/logging"
	"customer-rewards/internal/render"
	"customer-rewards/internal/usecase"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Define command-line flags; config values are the defaults.
	fs := flag.NewFlagSet("rewards", flag.ContinueOnError)
	fs.SetOutput(stderr)
	txFilesStr := fs.String("tx", "", "Comma-separated list of transaction CSV files (empty uses demo data)")
	customerID := fs.Int("customer", 0, "Only report this customer id (0 = all customers)")
	refDateStr := fs.String("ref", "", "Reference date (YYYY-MM-DD); overrides -mode")
	mode := fs.String("mode", cfg.Report.ReferenceMode, "Reference date when -ref is empty: latest|now")
	format := fs.String("format", cfg.Report.OutputFormat, "Output format: json|table|xlsx")
	outPath := fs.String("out", "", "Output file (required for xlsx)")
	listCustomers := fs.Bool("list-customers", false, "List customers found in the transactions and exit")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg.Report.ReferenceMode = strings.ToLower(*mode)
	cfg.Report.OutputFormat = strings.ToLower(*format)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Report.OutputFormat == "xlsx" && *outPath == "" {
		fmt.Fprintln(stderr, "Error: -out is required for xlsx output.")
		fs.Usage()
		return errUsage
	}

	var refDate time.Time
	if *refDateStr != "" {
		refDate, err = time.Parse(time.DateOnly, *refDateStr)
		if err != nil {
			return fmt.Errorf("parsing reference date: %w", err)
		}
	}
	refMode, err := usecase.ParseReferenceMode(cfg.Report.ReferenceMode)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Logging)

	// Wire the application: repository first, then the usecase.
	var repo usecase.TransactionRepository
	var paths []string
	if paths = splitPaths(*txFilesStr); len(paths) == 0 {
		logger.Info("no transaction files given, using demo data", "latency", cfg.Report.DemoLatency)
		repo = gateway.NewDemoTransactionRepository(cfg.Report.DemoLatency)
	} else {
		repo = gateway.NewCSVTransactionRepository()
	}
	rewardsUseCase := usecase.NewRewardsUseCase(repo, usecase.WithLogger(logger))

	if *listCustomers {
		customers, err := rewardsUseCase.ListCustomers(ctx, paths)
		if err != nil {
			return fmt.Errorf("listing customers failed: %w", err)
		}
		return render.Customers(stdout, customers)
	}

	report, err := rewardsUseCase.BuildReport(ctx, usecase.ReportRequest{
		Paths:         paths,
		CustomerID:    *customerID,
		ReferenceDate: refDate,
		Mode:          refMode,
	})
	if err != nil {
		return fmt.Errorf("building rewards report failed: %w", err)
	}

	// Present the output.
	switch cfg.Report.OutputFormat {
	case "table":
		return writeOutput(stdout, *outPath, func(w io.Writer) error { return render.Table(w, report) })
	case "xlsx":
		if err := render.XLSX(*outPath, report); err != nil {
			return err
		}
		logger.Info("workbook written", "path", *outPath)
		return nil
	default:
		return writeOutput(stdout, *outPath, func(w io.Writer) error { return render.JSON(w, report) })
	}
}

// splitPaths splits a comma-separated list, trimming blanks and dropping empty entries.
func splitPaths(list string) []string {
	var paths []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
