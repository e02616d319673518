// cmd/counter/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vegatek/stocktake/internal/adapters/catalog"
	"github.com/vegatek/stocktake/internal/adapters/scanner"
	"github.com/vegatek/stocktake/internal/adapters/store"
	"github.com/vegatek/stocktake/internal/core/domain"
	"github.com/vegatek/stocktake/internal/core/ports"
	"github.com/vegatek/stocktake/internal/core/services"
	"github.com/vegatek/stocktake/internal/pkg/config"
	"github.com/vegatek/stocktake/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "text")

	slogger.Info("starting stock-take counter",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdin := bufio.NewReader(os.Stdin)

	deps, err := initializeDependencies(cfg, stdin, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup(slogger.Logger)

	if err := deps.session.Start(ctx); err != nil {
		slogger.Error("failed to start session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := deps.session.RefreshDepots(ctx); err != nil {
		// The session still works against the locally restored list.
		slogger.Warn("depot list unavailable", slog.String("error", err.Error()))
	}

	if err := runLoop(ctx, deps.session, deps.scanner, stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slogger.Error("session ended with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("session closed")
}

// dependencies holds all application dependencies
type dependencies struct {
	badgerStore *store.BadgerStore
	redisClient *redis.Client
	countStore  ports.CountStore
	gateway     ports.CatalogGateway
	session     ports.CountSession
	scanner     ports.BarcodeScanner
}

func (d *dependencies) cleanup(log *slog.Logger) {
	if d.badgerStore != nil {
		if err := d.badgerStore.Close(); err != nil {
			log.Error("failed to close badger store", slog.String("error", err.Error()))
		}
	}
	if d.redisClient != nil {
		if err := d.redisClient.Close(); err != nil {
			log.Error("failed to close redis client", slog.String("error", err.Error()))
		}
	}
}

func initializeDependencies(cfg *config.Config, stdin *bufio.Reader, log *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		deps.redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.GetRedisAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		deps.countStore = store.NewRedisStore(deps.redisClient, cfg.Store.Key, cfg.Store.Strict, log)
	case config.StoreBackendBadger:
		badgerStore, err := store.OpenBadger(cfg.Store.BadgerPath, cfg.Store.Strict, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open local store: %w", err)
		}
		deps.badgerStore = badgerStore
		deps.countStore = badgerStore
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}

	deps.gateway = catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, log)
	deps.session = services.NewCountSession(deps.gateway, deps.countStore, log, services.SessionOptions{
		CountType: cfg.Catalog.CountType,
		Now:       time.Now,
	})
	deps.scanner = scanner.NewLineScanner(stdin)

	return deps, nil
}

// runLoop drives the interactive counting session: one command per line,
// one action at a time.
func runLoop(ctx context.Context, session ports.CountSession, scan ports.BarcodeScanner, reader *bufio.Reader, out io.Writer) error {
	fmt.Fprintln(out, "commands: scan | add <qty> [note] | list | del <n> | depot <code> | depots | export <file> | submit | quit")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printPrompt(out, session)

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "scan":
			fmt.Fprint(out, "barcode> ")
			code, err := scan.Scan(ctx)
			if err != nil {
				if err == io.EOF {
					return nil
				}
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			product, err := session.Lookup(ctx, code)
			if err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			fmt.Fprintf(out, "%s  %s  (%s, %s)\n", product.StockCode, product.Name, product.Unit, product.PurchasePrice.StringFixed(2))

		case "add":
			if len(args) == 0 {
				fmt.Fprintln(out, "! usage: add <qty> [note]")
				continue
			}
			note := strings.Join(args[1:], " ")
			if err := session.AddCount(ctx, args[0], note); err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			fmt.Fprintln(out, "added")

		case "list":
			printItems(out, session.Items())

		case "del":
			if len(args) != 1 {
				fmt.Fprintln(out, "! usage: del <n>")
				continue
			}
			index, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(out, "! usage: del <n>")
				continue
			}
			if err := session.RemoveItem(ctx, index-1); err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			fmt.Fprintln(out, "removed")

		case "depot":
			if len(args) != 1 {
				fmt.Fprintln(out, "! usage: depot <code>")
				continue
			}
			if err := session.SelectDepot(args[0]); err != nil {
				fmt.Fprintf(out, "! %v\n", err)
			}

		case "depots":
			for _, d := range session.Depots() {
				fmt.Fprintf(out, "%-8s %s\n", d.Code, d.Name)
			}

		case "export":
			if len(args) != 1 {
				fmt.Fprintln(out, "! usage: export <file>")
				continue
			}
			if err := exportToFile(session, args[0]); err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			fmt.Fprintf(out, "written %s\n", args[0])

		case "submit":
			msg, err := session.Submit(ctx)
			if err != nil {
				fmt.Fprintf(out, "! %v\n", err)
				continue
			}
			fmt.Fprintln(out, msg)

		case "quit", "exit":
			return nil

		default:
			fmt.Fprintf(out, "! unknown command %q\n", cmd)
		}
	}
}

func printPrompt(out io.Writer, session ports.CountSession) {
	depot := "-"
	if d := session.SelectedDepot(); d != nil {
		depot = d.Code
	}
	summary := session.Summary()
	fmt.Fprintf(out, "[%s %d items %s] ", depot, summary.Entries, summary.TotalQuantity.String())
}

func printItems(out io.Writer, items []domain.CountItem) {
	if len(items) == 0 {
		fmt.Fprintln(out, "count list is empty")
		return
	}
	for i, item := range items {
		fmt.Fprintf(out, "%3d. %-12s %-30s %10s  %s\n",
			i+1, item.StockCode, item.StockName, item.Quantity.String(), item.DepotName)
	}
}

func exportToFile(session ports.CountSession, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return session.ExportExcel(f)
}
