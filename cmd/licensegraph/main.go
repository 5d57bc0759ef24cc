// Package main provides the licensegraph binary entry point. Licensegraph
// maps license records to and from a triple-based knowledge graph,
// tolerating legacy predicate names on read while writing the current
// schema.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/spf13/cobra"

	"github.com/spdxkit/licensegraph/config"
	"github.com/spdxkit/licensegraph/graph"
	"github.com/spdxkit/licensegraph/license"
	"github.com/spdxkit/licensegraph/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "licensegraph",
		Short: "License entity mapping over a triple-based knowledge graph",
		Long: `Licensegraph projects license records into subject/predicate/object
triples and reconstructs them, resolving legacy predicate names on read and
writing the current schema with replace semantics.

Examples:
  licensegraph show --snapshot triples.json spdx.MIT
  licensegraph verify --snapshot triples.json spdx.MIT
  licensegraph equivalent --snapshot triples.json spdx.MIT spdx.MIT-0
  licensegraph publish --snapshot triples.json spdx.MIT
  licensegraph catalog put mit.json
  licensegraph catalog list
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Path to a JSON triple snapshot (defaults to graph.snapshot from config)")

	cmd.AddCommand(showCmd(&snapshotPath))
	cmd.AddCommand(verifyCmd(&snapshotPath))
	cmd.AddCommand(equivalentCmd(&snapshotPath))
	cmd.AddCommand(importCmd(&snapshotPath))
	cmd.AddCommand(publishCmd(&snapshotPath))
	cmd.AddCommand(catalogCmd())

	return cmd
}

// connectNATS builds and connects a client from the flag value or config.
func connectNATS(ctx context.Context, natsURL string, cfg *config.Config) (*natsclient.Client, error) {
	if natsURL == "" {
		natsURL = cfg.NATS.URL
	}
	if natsURL == "" {
		return nil, fmt.Errorf("no NATS URL configured; pass --nats or set nats.url")
	}

	nc, err := natsclient.NewClient(natsURL,
		natsclient.WithName("licensegraph"),
		natsclient.WithTimeout(cfg.NATS.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}
	if err := nc.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}

func loadConfig() (*config.Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return config.NewLoader(logger).Load()
}

func openSnapshot(snapshotPath string) (*graph.MemStore, string, error) {
	path := snapshotPath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, "", err
		}
		path = cfg.Graph.Snapshot
	}
	if path == "" {
		return nil, "", fmt.Errorf("no snapshot configured; pass --snapshot or set graph.snapshot")
	}
	store, err := graph.LoadSnapshot(path)
	if err != nil {
		return nil, "", err
	}
	return store, path, nil
}

func showCmd(snapshotPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <subject>",
		Short: "Load a license from the graph and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSnapshot(*snapshotPath)
			if err != nil {
				return err
			}

			l, err := license.Load(store, args[0])
			if err != nil {
				return err
			}

			record := storage.NewRecord(l)
			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func verifyCmd(snapshotPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <subject>",
		Short: "Report missing required fields for a license in the graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSnapshot(*snapshotPath)
			if err != nil {
				return err
			}

			l, err := license.Load(store, args[0])
			if err != nil {
				return err
			}

			problems := l.Verify()
			if len(problems) == 0 {
				fmt.Printf("%s: ok\n", args[0])
				return nil
			}
			for _, p := range problems {
				fmt.Println(p)
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
}

func equivalentCmd(snapshotPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent <subjectA> <subjectB>",
		Short: "Compare two licenses by normalized body text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSnapshot(*snapshotPath)
			if err != nil {
				return err
			}

			a, err := license.Load(store, args[0])
			if err != nil {
				return err
			}
			b, err := license.Load(store, args[1])
			if err != nil {
				return err
			}

			if a.Equivalent(b) {
				fmt.Println("equivalent")
				return nil
			}
			fmt.Println("not equivalent")
			return nil
		},
	}
}

func importCmd(snapshotPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <record.json>",
		Short: "Project a license record into the snapshot with replace semantics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, path, err := openSnapshot(*snapshotPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read record: %w", err)
			}
			var record storage.Record
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("parse record: %w", err)
			}
			if record.LicenseID == "" {
				return storage.ErrMissingID
			}

			subject := graph.LicenseEntityID(record.LicenseID)
			if _, err := license.Persist(store, subject, record.License()); err != nil {
				return err
			}
			if err := graph.SaveSnapshot(path, store); err != nil {
				return err
			}

			fmt.Printf("projected %s as %s\n", record.LicenseID, subject)
			return nil
		},
	}
}

func publishCmd(snapshotPath *string) *cobra.Command {
	var natsURL string

	cmd := &cobra.Command{
		Use:   "publish <subject>",
		Short: "Publish a license entity to the graph ingest stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSnapshot(*snapshotPath)
			if err != nil {
				return err
			}

			l, err := license.Load(store, args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.NATS.Timeout+30*time.Second)
			defer cancel()
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			nc, err := connectNATS(ctx, natsURL, cfg)
			if err != nil {
				return err
			}
			defer nc.Close(ctx)

			if err := graph.PublishEntity(ctx, nc, cfg.Graph.IngestSubject, args[0], l.Project(args[0])); err != nil {
				return err
			}

			fmt.Printf("published %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS server URL (overrides config)")
	return cmd
}

func catalogCmd() *cobra.Command {
	var natsURL string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the license record catalog in NATS KV",
	}
	cmd.PersistentFlags().StringVar(&natsURL, "nats", "", "NATS server URL (overrides config)")

	cmd.AddCommand(catalogPutCmd(&natsURL))
	cmd.AddCommand(catalogGetCmd(&natsURL))
	cmd.AddCommand(catalogListCmd(&natsURL))
	cmd.AddCommand(catalogDeleteCmd(&natsURL))
	return cmd
}

// withCatalog connects, opens the configured bucket, and runs fn against it.
func withCatalog(natsURL string, fn func(context.Context, *storage.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.NATS.Timeout+30*time.Second)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	nc, err := connectNATS(ctx, natsURL, cfg)
	if err != nil {
		return err
	}
	defer nc.Close(ctx)

	js, err := nc.JetStream()
	if err != nil {
		return fmt.Errorf("open JetStream: %w", err)
	}
	store, err := storage.NewStore(ctx, js, cfg.Catalog.Bucket)
	if err != nil {
		return err
	}
	return fn(ctx, store)
}

func catalogPutCmd(natsURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "put <record.json>",
		Short: "Store a license record in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read record: %w", err)
			}
			var record storage.Record
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("parse record: %w", err)
			}

			return withCatalog(*natsURL, func(ctx context.Context, store *storage.Store) error {
				if err := store.Put(ctx, &record); err != nil {
					return err
				}
				fmt.Printf("stored %s\n", record.LicenseID)
				return nil
			})
		},
	}
}

func catalogGetCmd(natsURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <license-id>",
		Short: "Print a license record from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(*natsURL, func(ctx context.Context, store *storage.Store) error {
				record, err := store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(record, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			})
		},
	}
}

func catalogListCmd(natsURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List license records in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(*natsURL, func(ctx context.Context, store *storage.Store) error {
				records, err := store.List(ctx)
				if err != nil {
					return err
				}
				for _, r := range records {
					fmt.Printf("%s\t%s\n", r.LicenseID, r.Name)
				}
				return nil
			})
		},
	}
}

func catalogDeleteCmd(natsURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <license-id>",
		Short: "Remove a license record from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(*natsURL, func(ctx context.Context, store *storage.Store) error {
				if err := store.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Printf("deleted %s\n", args[0])
				return nil
			})
		},
	}
}
