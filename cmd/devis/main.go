package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/diewo77/go-devis/internal/config"
	"github.com/diewo77/go-devis/internal/models"
	"github.com/diewo77/go-devis/internal/money"
	"github.com/diewo77/go-devis/internal/numbering"
	"github.com/diewo77/go-devis/internal/services"
	"github.com/diewo77/go-devis/pkg/logger"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Must(logger.New(cfg.App.Dev))
	defer func() { _ = log.Sync() }()

	display := money.NewFormatter(cfg.App.Locale, cfg.App.Currency)
	repo := services.NewQuoteRepository(
		services.NewItemService(),
		services.NewTotalsService(cfg.Quote.DepositPercent, cfg.Quote.PaymentMethods, display),
		scheme(cfg.Numbering),
		cfg.Quote.ValidityDays,
		logger.Named(log, "quotes"),
	)

	quote := repo.CreateQuote()
	seed(repo, log)
	printQuote(repo, display)

	// Demonstrate the number-editing loop: parse the minted reference and
	// render it back.
	parsed := numbering.Parse(quote.Number)
	log.Info("number round trip",
		zap.String("number", quote.Number),
		zap.String("reformatted", numbering.Format(parsed)))
}

// scheme converts the env-level numbering settings into a codec template.
func scheme(n config.NumberingConfig) numbering.Config {
	mode := numbering.DateModeYearMonth
	if n.DateMode == string(numbering.DateModeYear) {
		mode = numbering.DateModeYear
	}
	return numbering.Config{
		Prefix:    n.Prefix,
		Separator: n.Separator,
		DateMode:  mode,
		Length:    n.Length,
	}
}

// seed fills the current quote with a small example document.
func seed(repo *services.QuoteRepository, log *zap.Logger) {
	rows := []models.QuoteItem{
		{Type: models.ItemTypeTitle, Level: 1, Designation: "Salle de bain"},
		{Type: models.ItemTypeSupply, Level: 2, Designation: "Carrelage sol", Unit: "m²",
			Quantity: models.ParseAmount("23"), UnitPrice: models.ParseAmount("46"), VAT: models.VATRateReduced},
		{Type: models.ItemTypeLabor, Level: 2, Designation: "Pose carrelage", Unit: "h",
			Quantity: models.ParseAmount("8,75"), UnitPrice: models.ParseAmount("11,34"), VAT: models.VATRateStandard},
		{Type: models.ItemTypeText, Level: 2, Designation: "Hors reprise du support."},
	}
	for _, row := range rows {
		if _, err := repo.AddItem(row); err != nil {
			log.Fatal("seed item", zap.Error(err))
		}
	}
}

// printQuote renders the current quote's outline, totals and payment
// conditions to stdout.
func printQuote(repo *services.QuoteRepository, display *money.Formatter) {
	quote, ok := repo.CurrentQuote()
	if !ok {
		return
	}
	labels, _ := repo.ItemLabels()

	fmt.Printf("Devis %s du %s (valable jusqu'au %s)\n\n",
		quote.Number,
		quote.Date.Format("2006-01-02"),
		quote.ValidUntil.Format("2006-01-02"))
	for _, it := range quote.Items {
		label := labels[it.ID]
		if label == "" && !it.Type.IsNumbered() {
			fmt.Printf("      %s\n", it.Designation)
			continue
		}
		fmt.Printf("%-5s %-30s %s\n", label, it.Designation, display.FormatWithCurrency(it.TotalHT))
	}
	fmt.Printf("\nTotal HT      %s\n", display.FormatWithCurrency(quote.TotalHT))
	fmt.Printf("TVA 10%%       %s\n", display.FormatWithCurrency(quote.TotalTVA10))
	fmt.Printf("TVA 20%%       %s\n", display.FormatWithCurrency(quote.TotalTVA20))
	fmt.Printf("Total TTC     %s\n\n", display.FormatWithCurrency(quote.TotalTTC))
	fmt.Println(quote.PaymentConditions)
}
