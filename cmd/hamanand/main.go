// Copyright 2026 Parsatext
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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/parsatext/hamanand"
	"github.com/parsatext/hamanand/check"
	"github.com/parsatext/hamanand/core"
	"github.com/parsatext/hamanand/ingestion"
)

func main() {
	app := &cli.App{
		Name:  "hamanand",
		Usage: "Sentence similarity and duplicate detection for Persian and Latin text",
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
				Name:      "add",
				Usage:     "Add a sentence to the local corpus",
				ArgsUsage: "<sentence>",
				Action:    addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "id",
						Usage: "Record id (defaults to a content-derived hash)",
					},
				},
			},
			{
				Name:      "check",
				Usage:     "Check a sentence against the corpus and open sources",
				ArgsUsage: "<sentence>",
				Action:    checkCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of recent corpus sentences to compare against",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "open-sources",
						Usage: "Include Wikipedia candidates",
						Value: true,
					},
					&cli.StringFlag{
						Name:  "lang",
						Usage: "Wikipedia language code",
						Value: check.DefaultLang,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Timeout for the open source lookup",
						Value: check.DefaultTimeout,
					},
				},
			},
			{
				Name:   "recent",
				Usage:  "List the newest corpus sentences",
				Action: recentCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of sentences to list",
						Value: 10,
					},
				},
			},
			{
				Name:      "import",
				Usage:     "Bulk load sentences from a text file, one per line",
				ArgsUsage: "<file>",
				Action:    importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB corpus directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for concurrent upserts",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N sentences",
						Value: 100,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openApp(c *cli.Context) (*hamanand.App, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	app, err := hamanand.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus store: %w", err)
	}
	return app, nil
}

func addCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("a sentence is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	id := c.String("id")
	if id == "" {
		id = core.IDFromContent(text)
	}

	record := &core.SentenceRecord{
		Id:        id,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := app.SentenceRepository().Upsert(context.Background(), record); err != nil {
		return fmt.Errorf("failed to store sentence: %w", err)
	}

	fmt.Println(record.Id)
	return nil
}

func checkCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("a sentence is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	checker, err := app.NewChecker(check.WithInternalLimit(c.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to create checker: %w", err)
	}

	result, err := checker.Check(context.Background(), text, check.Options{
		UseOpenSources: c.Bool("open-sources"),
		Lang:           c.String("lang"),
		Timeout:        c.Duration("timeout"),
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func recentCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.SentenceRepository().FetchRecent(context.Background(), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to fetch sentences: %w", err)
	}

	for _, record := range records {
		fmt.Printf("%s\t%s\t%s\n",
			record.Id,
			record.CreatedAt.Format(time.RFC3339),
			record.Text)
	}
	return nil
}

func importCommand(c *cli.Context) error {
	filePath := c.Args().First()
	if filePath == "" {
		return fmt.Errorf("an input file is required")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	opts := []ingestion.Option{
		ingestion.WithProgress(os.Stderr, c.Int("report-interval")),
	}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, ingestion.WithPoolSize(workers))
	}

	pipeline, err := app.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	stats, err := pipeline.Load(context.Background(), file)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Read: %d\n", stats.Read)
	fmt.Fprintf(os.Stderr, "Skipped: %d\n", stats.Skipped)
	fmt.Fprintf(os.Stderr, "Inserted: %d\n", stats.Inserted)
	fmt.Fprintf(os.Stderr, "Failed: %d\n", stats.Failed)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
