// Command seed loads sources and topics from a YAML file into the database.
// It is used to bootstrap a fresh environment before the ingestion API
// starts accepting articles.
//
// Usage:
//
//	seed -file seed.yaml
//
// The file format:
//
//	sources:
//	  - name: Example Wire
//	    feed_url: https://example.com/feed
//	topics:
//	  - technology
//	  - science
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"newswire/internal/domain/entity"
	pgRepo "newswire/internal/infra/adapter/persistence/postgres"
	"newswire/internal/infra/db"
	"newswire/internal/observability/logging"
	srcUC "newswire/internal/usecase/source"
	topicUC "newswire/internal/usecase/topic"
)

// seedFile is the YAML shape of a seed document.
type seedFile struct {
	Sources []seedSource `yaml:"sources"`
	Topics  []string     `yaml:"topics"`
}

type seedSource struct {
	Name    string `yaml:"name"`
	FeedURL string `yaml:"feed_url"`
}

func main() {
	var (
		path        = flag.String("file", "seed.yaml", "path to the seed YAML file")
		concurrency = flag.Int("concurrency", 4, "max concurrent inserts")
		timeout     = flag.Duration("timeout", time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	data, err := os.ReadFile(*path)
	if err != nil {
		logger.Error("failed to read seed file", slog.Any("error", err))
		os.Exit(1)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		logger.Error("failed to parse seed file", slog.Any("error", err))
		os.Exit(1)
	}

	database := db.Open()
	defer func() { _ = database.Close() }()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	srcSvc := &srcUC.Service{Repo: pgRepo.NewSourceRepo(database)}
	topicSvc := &topicUC.Service{Repo: pgRepo.NewTopicRepo(database)}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	for _, s := range seed.Sources {
		g.Go(func() error {
			created, err := srcSvc.Create(gctx, srcUC.CreateInput{
				Name:    s.Name,
				FeedURL: s.FeedURL,
			})
			if err != nil {
				var verr *entity.ValidationError
				if errors.As(err, &verr) {
					logger.Warn("skipping invalid source",
						slog.String("name", s.Name),
						slog.Any("error", err))
					return nil
				}
				return err
			}
			logger.Info("source created",
				slog.Int64("id", created.ID),
				slog.String("name", created.Name))
			return nil
		})
	}

	for _, name := range seed.Topics {
		g.Go(func() error {
			created, err := topicSvc.Create(gctx, topicUC.CreateInput{Name: name})
			if err != nil {
				var verr *entity.ValidationError
				if errors.As(err, &verr) {
					logger.Warn("skipping invalid topic",
						slog.String("name", name),
						slog.Any("error", err))
					return nil
				}
				return err
			}
			logger.Info("topic created",
				slog.Int64("id", created.ID),
				slog.String("name", created.Name))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seeding complete",
		slog.Int("sources", len(seed.Sources)),
		slog.Int("topics", len(seed.Topics)))
}
