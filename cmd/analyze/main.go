// Command analyze prints the ETF risk report for a set of symbols to the terminal.
//
//	analyze -symbols SPY,QQQ -period 1y
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"etf_dashboard/internal/app/di"
	"etf_dashboard/internal/feature/analysis/domain/entity"
	"etf_dashboard/internal/feature/analysis/presenter"
	analysisusecase "etf_dashboard/internal/feature/analysis/usecase"
	candlesdto "etf_dashboard/internal/feature/candles/transport/http/dto"
	symbolentity "etf_dashboard/internal/feature/symbollist/domain/entity"
	"etf_dashboard/internal/platform/config"
	"etf_dashboard/internal/platform/logger"
)

// MarketFactory builds the market data source from configuration.
type MarketFactory func(cfg config.MarketConfig) analysisusecase.MarketRepository

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, func(cfg config.MarketConfig) analysisusecase.MarketRepository {
		return di.NewMarket(cfg)
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, newMarket MarketFactory) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	symbols := fs.String("symbols", "", "comma separated tickers, e.g. SPY,QQQ")
	period := fs.String("period", "", "lookback period (1mo, 3mo, 6mo, 1y, ytd, 5y, 10y)")
	benchmark := fs.String("benchmark", "", "benchmark ticker (default from config)")
	rf := fs.Float64("rf", 0, "annual risk-free rate as a fraction, e.g. 0.0427 (default from config)")
	configPath := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	slog.SetDefault(logger.New(stderr, cfg.Log.Level))

	if *benchmark != "" {
		cfg.Market.Benchmark = *benchmark
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "rf" {
			cfg.Market.RiskFreeRate = *rf
		}
	})
	if *period == "" {
		*period = cfg.Market.DefaultPeriod
	}

	selected := entity.NormalizeSymbols([]string{*symbols})
	if len(selected) == 0 {
		fmt.Fprintln(stderr, "error: no symbols given")
		fs.Usage()
		return 1
	}

	uc := analysisusecase.NewAnalysisUsecase(newMarket(cfg.Market), catalogueCategories{}, di.AnalysisOptions(cfg.Market))
	report, err := uc.Analyze(ctx, selected, *period)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if err := render(stdout, report); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// catalogueCategories serves categories from the built-in catalogue so the
// CLI works without a database.
type catalogueCategories struct{}

func (catalogueCategories) Categories(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(symbolentity.DefaultCatalogue))
	for _, s := range symbolentity.DefaultCatalogue {
		out[s.Code] = s.Category
	}
	return out, nil
}

// render writes the report as plain text: a header, one info block per
// symbol, the notices and the summary table.
func render(w io.Writer, r entity.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Period:\t%s\n", r.Period)
	fmt.Fprintf(tw, "Benchmark:\t%s\n", r.Benchmark)
	fmt.Fprintf(tw, "Risk-free rate:\t%s\n", presenter.FormatPercent(r.RiskFreeRate*100))
	fmt.Fprintln(tw)

	for _, s := range r.Symbols {
		fmt.Fprintf(tw, "%s\t%s\n", s.Symbol, orNA(s.Info.LongName))
		fmt.Fprintf(tw, "  Category\t%s\n", orNA(s.Info.Category))
		fmt.Fprintf(tw, "  Currency\t%s\n", orNA(s.Info.Currency))
		fmt.Fprintf(tw, "  Exchange\t%s\n", orNA(s.Info.Exchange))
		fmt.Fprintf(tw, "  Growth of %s\t%s\n",
			presenter.FormatFixed(s.InitialInvestment), presenter.FormatFixed(s.FinalValue))
	}

	if len(r.Notices) > 0 {
		fmt.Fprintln(tw)
		for _, n := range r.Notices {
			fmt.Fprintf(tw, "[%s]\t%s\n", n.Kind, n.Message)
		}
	}

	if !r.Table.Empty() {
		fmt.Fprintln(tw)
		header := []string{"Symbol"}
		for _, c := range r.Table.Columns {
			header = append(header, c.Title())
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, row := range r.Table.Rows {
			cells := []string{row.Symbol}
			for _, c := range row.Cells {
				cells = append(cells, c.Text)
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return candlesdto.NotAvailable
	}
	return s
}
