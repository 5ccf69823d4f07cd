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

package hamanand

import (
	"log/slog"

	"github.com/parsatext/hamanand/check"
	"github.com/parsatext/hamanand/ingestion"
	"github.com/parsatext/hamanand/storage"
	"github.com/parsatext/hamanand/storage/badger"
	"github.com/parsatext/hamanand/wikipedia"
)

// App wires the storage backend, the sentence repository, and the
// Wikipedia client into a single similarity-checking service.
type App struct {
	backend      *badger.Backend
	sentenceRepo storage.SentenceRepository
	wikiClient   *wikipedia.Client
	logger       *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	wikiConfig *wikipedia.Config
	inMemory   bool
	logger     *slog.Logger
}

// WithWikipediaConfig overrides the Wikipedia client configuration.
func WithWikipediaConfig(config *wikipedia.Config) AppOption {
	return func(o *appOptions) {
		if config != nil {
			o.wikiConfig = config
		}
	}
}

// WithInMemoryStorage opens the backing store in memory instead of on
// disk. Intended for tests and throwaway sessions.
func WithInMemoryStorage() AppOption {
	return func(o *appOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AppOption {
	return func(o *appOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New opens the corpus store at filePath and assembles the service.
func New(filePath string, opts ...AppOption) (*App, error) {
	options := &appOptions{
		wikiConfig: wikipedia.DefaultConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	sentenceRepo, err := badger.NewSentenceRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	wikiClient, err := wikipedia.NewClient(options.wikiConfig,
		wikipedia.WithLogger(options.logger))
	if err != nil {
		sentenceRepo.Close()
		backend.Close()
		return nil, err
	}

	return &App{
		backend:      backend,
		sentenceRepo: sentenceRepo,
		wikiClient:   wikiClient,
		logger:       options.logger,
	}, nil
}

func (a *App) Close() error {
	if err := a.sentenceRepo.Close(); err != nil {
		a.logger.Error("error closing sentence repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (a *App) SentenceRepository() storage.SentenceRepository {
	return a.sentenceRepo
}

func (a *App) WikipediaClient() *wikipedia.Client {
	return a.wikiClient
}

func (a *App) NewChecker(opts ...check.Option) (*check.Checker, error) {
	opts = append([]check.Option{check.WithLogger(a.logger)}, opts...)
	return check.NewChecker(a.sentenceRepo, a.wikiClient, opts...)
}

func (a *App) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(a.logger)}, opts...)
	return ingestion.NewPipeline(a.sentenceRepo, opts...)
}
