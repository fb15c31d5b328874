package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	localize "github.com/goliatone/go-localize"
	glog "github.com/goliatone/go-logger/glog"
)

func main() {
	languageCode := flag.String("lang", "fr", "language code to activate")
	marketCode := flag.String("market", "FR", "market code to activate")
	translationsPath := flag.String("translations", "", "optional YAML/JSON translation file")
	flag.Parse()

	logger := glog.NewLogger(
		glog.WithLevel(glog.Debug),
		glog.WithLoggerTypeConsole(),
	)

	opts := []localize.Option{
		localize.WithCurrentLanguage(*languageCode),
		localize.WithCurrentMarket(*marketCode),
		localize.WithLogger(logger),
	}

	if *translationsPath != "" {
		store, err := localize.NewFileLoader(*translationsPath).LoadStore()
		if err != nil {
			logger.Error("failed to load translations", "error", err)
			os.Exit(1)
		}
		opts = append(opts, localize.WithStore(store))
	}

	engine, err := localize.NewEngine(opts...)
	if err != nil {
		logger.Error("failed to start engine", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	locale := engine.ActiveLocale()

	// Trigger the first bundle load and wait for it so the demo prints
	// store-backed values instead of the built-in fallback.
	engine.T(ctx, "nav.home", nil)
	engine.Wait()

	fmt.Printf("active locale: %s (rtl=%v)\n\n", locale.Code, engine.IsRTL())
	fmt.Println("translate nav.home:", engine.T(ctx, "nav.home", nil))
	fmt.Println("translate common.loading:", engine.T(ctx, "common.loading", nil))

	fmt.Println()
	fmt.Println("currency:", engine.FormatCurrency(1234.56))
	fmt.Println("number:  ", engine.FormatNumber(9876543.21, 2))
	fmt.Println("date:    ", engine.FormatDate(time.Now(), localize.DateStyleLong))
	fmt.Println("phone:   ", engine.FormatPhone("0612345678"))

	formatter := engine.Formatter()
	fmt.Println("compact: ", formatter.FormatCompactNumber(1_200_000))

	address := localize.Address{
		Street:     "12 Rue de Rivoli",
		City:       "Paris",
		PostalCode: "75001",
		Country:    "France",
	}
	fmt.Println()
	fmt.Println("address:")
	fmt.Println(formatter.FormatAddress(address, *languageCode, *marketCode, true))

	validation := formatter.ValidateAddress(address, *languageCode, *marketCode)
	fmt.Printf("\naddress valid: %v (missing %v)\n", validation.IsValid, validation.MissingFields)
}
