package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/backend"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/cli"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/dashboard"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/quotes"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/rates"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/report"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/services"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/source/file"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/storage"
)

func main() {
	var (
		dateFlag     = flag.String("date", "", "reference date YYYY-MM-DD (default: today)")
		categoryFlag = flag.String("category", "Food", "category for the category spending report")
		yearFlag     = flag.Int("year", 0, "target year for the cashback analysis (default: reference year)")
		monthFlag    = flag.Int("month", 0, "target month 1-12 for the cashback analysis (default: reference month)")
		importFlag   = flag.Bool("import", false, "import the operations CSV from the data directory into SQLite before reporting")
	)
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	logger.Info("Starting report run", "backend", cfg.DataBackend)

	ref := time.Now()
	if *dateFlag != "" {
		parsed, err := core.ParseReferenceDate(*dateFlag)
		if err != nil {
			logger.Error("Invalid reference date", "date", *dateFlag, "error", err)
			os.Exit(1)
		}
		ref = parsed
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}
	result, err := backend.NewFactory(logger).Create(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	fileStore := file.New(cfg.DataDir)

	if *importFlag {
		importOperations(ctx, logger, result, fileStore)
	}

	transactions, err := result.Transactions.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load transactions", "error", err)
		os.Exit(1)
	}
	logger.Info("Transactions loaded", "count", len(transactions))

	settings, err := fileStore.ReadSettings(ctx)
	if err != nil {
		logger.Error("Failed to load user settings", "error", err)
		os.Exit(1)
	}

	assembler := &dashboard.Assembler{
		Rates:  rates.NewClient(cfg.RatesBaseURL),
		Quotes: quotes.NewClient(cfg.QuotesBaseURL, cfg.QuotesAPIKey),
	}
	summary, err := assembler.Assemble(ctx, ref, transactions, core.GroupByCard(transactions), settings)
	if err != nil {
		logger.Error("Failed to assemble dashboard", "error", err)
		os.Exit(1)
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		logger.Error("Failed to marshal dashboard", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(summaryJSON))

	year, month := *yearFlag, *monthFlag
	if year == 0 {
		year = ref.Year()
	}
	if month == 0 {
		month = int(ref.Month())
	}
	cashback, err := services.AnalyzeCashbackCategories(transactions, year, time.Month(month))
	if err != nil {
		logger.Error("Cashback analysis failed", "error", err, "year", year, "month", month)
		os.Exit(1)
	}
	cashbackJSON, err := services.RenderCashback(cashback)
	if err != nil {
		logger.Error("Failed to render cashback analysis", "error", err)
		os.Exit(1)
	}
	fmt.Println(cashbackJSON)

	var notifier reportNotifier
	if client := cli.InitNotifier(logger, cfg); client != nil {
		defer client.Close()
		notifier = client
	}

	writeReports(ctx, logger, cfg.ReportsDir, *categoryFlag, ref, transactions, notifier)
	logger.Info("Report run finished")
}

type reportNotifier interface {
	PublishReportReady(ctx context.Context, name, path string, rows int) error
}

func writeReports(ctx context.Context, logger *slog.Logger, dir, category string, ref time.Time, txns []core.Transaction, notifier reportNotifier) {
	type namedReport struct {
		name      string
		aggregate func() (report.Report, error)
	}
	reports := []namedReport{
		{"spending_by_category", func() (report.Report, error) {
			return report.SpendingByCategory(txns, category, ref)
		}},
		{"spending_by_weekday", func() (report.Report, error) {
			return report.SpendingByWeekday(txns, ref)
		}},
		{"spending_by_workday", func() (report.Report, error) {
			return report.SpendingByWorkday(txns, ref)
		}},
	}

	for _, nr := range reports {
		rep, err := nr.aggregate()
		if err != nil {
			logger.Error("Aggregation failed", "report", nr.name, "error", err)
			os.Exit(1)
		}
		path := filepath.Join(dir, nr.name+".json")
		if err := report.WriteFile(ctx, rep, path); err != nil {
			logger.Error("Failed to write report", "report", nr.name, "error", err)
			os.Exit(1)
		}
		if notifier != nil {
			if err := notifier.PublishReportReady(ctx, nr.name, path, len(rep.Rows)); err != nil {
				logger.Warn("Failed to publish report notification", "report", nr.name, "error", err)
			}
		}
	}
}

func importOperations(ctx context.Context, logger *slog.Logger, result *backend.Result, fileStore *file.Store) {
	repo, ok := result.Transactions.(*storage.SQLiteRepository)
	if !ok {
		logger.Error("Import requires the sqlite backend", "hint", "set DATA_BACKEND=sqlite")
		os.Exit(1)
	}
	txns, err := fileStore.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to read operations CSV for import", "error", err)
		os.Exit(1)
	}
	if err := repo.Import(ctx, txns); err != nil {
		logger.Error("Failed to import operations", "error", err)
		os.Exit(1)
	}
	logger.Info("Operations imported", "count", len(txns))
}
