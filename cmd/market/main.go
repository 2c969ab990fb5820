// Command market browses the public side of the marketplace: the item
// catalog and per-item order books. It never signs in; the endpoints it
// uses are open to anonymous clients.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/wfm-tools/keeper/internal/api"
	"github.com/wfm-tools/keeper/internal/config"
	"github.com/wfm-tools/keeper/internal/model"
	"github.com/wfm-tools/keeper/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional; environment is used without one)")
	itemName := flag.String("item", "", "item display name to look up (e.g. \"Ash Prime Set\")")
	search := flag.String("search", "", "filter the catalog listing by substring")
	top := flag.Int("top", 10, "number of entries to show")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("market " + version.String())
		return
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadAndValidate(*configPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := api.NewClient(cfg.API.BaseURL,
		api.WithLimiter(api.NewLimiter(cfg.API.RequestInterval)),
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	items, err := client.Items(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch catalog: %v", err)
	}

	if *itemName == "" {
		printCatalog(items, *search, *top)
		return
	}

	item, ok := items[*itemName]
	if !ok {
		fmt.Printf("Item %q not found in catalog.\n", *itemName)
		if near := matchNames(items, *itemName); len(near) > 0 {
			fmt.Println("Did you mean:")
			for i, name := range near {
				if i >= *top {
					break
				}
				fmt.Printf("  %s\n", name)
			}
		}
		os.Exit(1)
	}

	book, err := client.ItemOrders(ctx, item.URLName)
	if err != nil {
		log.Fatalf("Failed to fetch orders: %v", err)
	}

	fmt.Printf("=== %s (%s) ===\n", item.Name, item.URLName)
	fmt.Printf("%d sell / %d buy orders from in-game PC players\n", len(book.Sell), len(book.Buy))
	fmt.Println("\nSellers (cheapest first):")
	printOrders(book.Sell, *top)
	fmt.Println("\nBuyers (highest first):")
	printOrders(book.Buy, *top)
}

func printCatalog(items map[string]model.Item, search string, top int) {
	fmt.Printf("=== Item Catalog ===\n%d tradable items\n", len(items))

	names := make([]string, 0, len(items))
	for name := range items {
		if search != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(search)) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if search != "" {
		fmt.Printf("\n%d matching %q:\n", len(names), search)
	} else {
		fmt.Println("\nSample:")
	}
	for i, name := range names {
		if i >= top {
			fmt.Printf("  ... and %d more\n", len(names)-top)
			break
		}
		fmt.Printf("  %s (%s)\n", name, items[name].URLName)
	}
	fmt.Println("\nPass -item to look up an order book.")
}

// matchNames returns catalog names containing the query, sorted.
func matchNames(items map[string]model.Item, query string) []string {
	var names []string
	for name := range items {
		if strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func printOrders(orders []model.Order, top int) {
	if len(orders) == 0 {
		fmt.Println("  (none)")
		return
	}
	for i, o := range orders {
		if i >= top {
			break
		}
		fmt.Printf("  %2d. %4dp x%-3d %-24s updated %s\n", i+1, o.Platinum, o.Quantity, o.User, age(o.LastUpdate))
	}
}

// age renders how long ago a timestamp was, coarsely.
func age(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := time.Since(t)
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d >= time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
}
