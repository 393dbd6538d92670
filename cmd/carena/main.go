// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/carena"
	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/ingestion"
	"github.com/poiesic/carena/recommend"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "carena",
		Usage: "Accommodation catalog: load, query, and rank support options",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load a catalog JSON file into the store",
				Action: loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to catalog JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to write per transaction",
						Value: 64,
					},
				},
			},
			{
				Name:   "query",
				Usage:  "Filter concerns by traits, domain, and situations",
				Action: queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "trait",
						Aliases: []string{"t"},
						Usage:   "Trait type to match (repeatable, ORed together)",
					},
					&cli.StringFlag{
						Name:  "domain",
						Usage: "Domain to match (workplace, education, support-service)",
					},
					&cli.StringSliceFlag{
						Name:    "situation",
						Aliases: []string{"s"},
						Usage:   "Situation label to match under the domain (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "cards",
						Usage: "Also print each concern's remedy cards (requires --domain)",
					},
				},
			},
			{
				Name:   "rank",
				Usage:  "Rank one concern's remedy options for a domain",
				Action: rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "concern",
						Usage:    "Concern slug to rank options for",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "domain",
						Usage:    "Domain to scope options to (workplace, education, support-service)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "weight",
						Usage: "Criterion weight override as name=value (repeatable)",
					},
					&cli.StringFlag{
						Name:  "max-cost",
						Usage: "Hard limit: maximum cost level (low, medium, high)",
					},
					&cli.StringFlag{
						Name:  "max-difficulty",
						Usage: "Hard limit: maximum difficulty level (low, medium, high)",
					},
					&cli.StringFlag{
						Name:  "min-legal",
						Usage: "Hard limit: minimum legal basis (optional, reasonable-effort, mandatory)",
					},
					&cli.IntFlag{
						Name:  "max-lead-time",
						Usage: "Hard limit: maximum lead time in days",
						Value: -1,
					},
					&cli.Float64Flag{
						Name:  "max-upkeep",
						Usage: "Hard limit: maximum monthly upkeep in hours",
						Value: -1,
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Print per-criterion score breakdown",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	catalog, err := carena.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer catalog.Close()

	loader, err := catalog.NewLoader(ingestion.WithBatchSize(c.Int("batch-size")))
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	defer loader.Release()

	stats, err := loader.LoadFile(ctx, c.String("catalog"))
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d concerns, %d cares, %d variants, %d bundles in %s\n",
		stats.Concerns, stats.Cares, stats.Variants, stats.Bundles, stats.Elapsed)
	return nil
}

func queryCommand(c *cli.Context) error {
	ctx := context.Background()

	catalog, err := carena.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer catalog.Close()

	indices, err := catalog.BuildIndices(ctx)
	if err != nil {
		return fmt.Errorf("failed to build indices: %w", err)
	}

	filter, err := catalog.NewFilter(indices)
	if err != nil {
		return fmt.Errorf("failed to create filter: %w", err)
	}

	domain := core.Domain(c.String("domain"))
	concerns, err := filter.Apply(ctx, &core.Query{
		Traits:     c.StringSlice("trait"),
		Domain:     domain,
		Situations: c.StringSlice("situation"),
	})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(concerns) == 0 {
		fmt.Println("No matching concerns.")
		return nil
	}

	if c.Bool("cards") {
		if !core.ValidDomain(domain) {
			return fmt.Errorf("--cards requires a valid --domain")
		}
		assembler, err := catalog.NewAssembler()
		if err != nil {
			return fmt.Errorf("failed to create assembler: %w", err)
		}
		items, err := assembler.Assemble(ctx, concerns, domain)
		if err != nil {
			return fmt.Errorf("failed to assemble view: %w", err)
		}
		for _, item := range items {
			fmt.Printf("%s\t%s\n", item.Concern.Slug, item.Concern.Title)
			for _, card := range item.Cards {
				fmt.Printf("  [%s] %s\n", card.Label, card.Care.Title)
				for _, bullet := range card.Bullets {
					fmt.Printf("      - %s\n", bullet)
				}
			}
		}
		return nil
	}

	for _, concern := range concerns {
		fmt.Printf("%s\t%s\n", concern.Slug, concern.Title)
	}
	return nil
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	domain := core.Domain(c.String("domain"))
	if !core.ValidDomain(domain) {
		return fmt.Errorf("invalid domain %q", c.String("domain"))
	}

	pref, err := buildPreference(c)
	if err != nil {
		return err
	}

	catalog, err := carena.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer catalog.Close()

	concern, err := catalog.ConcernRepository().GetConcern(ctx, core.IDFromSlug(c.String("concern")))
	if err != nil {
		return fmt.Errorf("failed to load concern %q: %w", c.String("concern"), err)
	}

	assembler, err := catalog.NewAssembler()
	if err != nil {
		return fmt.Errorf("failed to create assembler: %w", err)
	}

	items, err := assembler.Assemble(ctx, []*core.Concern{concern}, domain)
	if err != nil {
		return fmt.Errorf("failed to assemble view: %w", err)
	}
	if len(items) == 0 || len(items[0].Cards) == 0 {
		fmt.Println("No options bundled for this concern.")
		return nil
	}

	var rankerOpts []recommend.RankerOption
	if c.Bool("debug") {
		rankerOpts = append(rankerOpts, recommend.WithDebug())
	}
	ranker, err := catalog.NewRanker(rankerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create ranker: %w", err)
	}

	results, err := ranker.Rank(ctx, items[0].Options(), pref)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	fmt.Printf("%s (%s)\n", concern.Title, domain)
	for _, result := range results {
		fmt.Printf("  [%s] %.3f  %s\n", result.Label, result.Score, result.Title)
		if len(result.Badges) > 0 {
			fmt.Printf("       badges: %s\n", strings.Join(result.Badges, ", "))
		}
		fmt.Printf("       %s\n", result.Reason)
		if result.Debug != nil {
			for _, criterion := range recommend.Criteria {
				fmt.Printf("       %-18s %.3f\n", criterion, result.Debug.Criteria[criterion])
			}
			fmt.Printf("       weighted %.4f, bonus %.2f, penalty %.2f\n",
				result.Debug.Weighted, result.Debug.Bonus, result.Debug.Penalty)
			if len(result.Debug.Violations) > 0 {
				fmt.Printf("       violated: %s\n", strings.Join(result.Debug.Violations, ", "))
			}
		}
	}
	return nil
}

// buildPreference assembles weight overrides and hard limits from flags.
func buildPreference(c *cli.Context) (*recommend.Preference, error) {
	pref := &recommend.Preference{}

	for _, spec := range c.StringSlice("weight") {
		name, value, found := strings.Cut(spec, "=")
		if !found {
			return nil, fmt.Errorf("invalid weight %q: expected name=value", spec)
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", spec, err)
		}
		if pref.Weights == nil {
			pref.Weights = make(map[recommend.Criterion]float64)
		}
		pref.Weights[recommend.Criterion(name)] = parsed
	}

	limits := &recommend.HardLimits{
		MaxCost:       core.Level(c.String("max-cost")),
		MaxDifficulty: core.Level(c.String("max-difficulty")),
		MinLegal:      core.LegalBasis(c.String("min-legal")),
	}
	hasLimits := limits.MaxCost != "" || limits.MaxDifficulty != "" || limits.MinLegal != ""
	if days := c.Int("max-lead-time"); days >= 0 {
		limits.MaxLeadTimeDays = &days
		hasLimits = true
	}
	if hours := c.Float64("max-upkeep"); hours >= 0 {
		limits.MaxUpkeepHoursPerMonth = &hours
		hasLimits = true
	}
	if hasLimits {
		pref.HardLimits = limits
	}

	return pref, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
