package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"creatures/internal/log"
	"creatures/internal/storage"
)

var stdout io.Writer = os.Stdout

func main() {
	log.Default()
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "grow":
		return runGrow(ctx, args[1:])
	case "activate":
		return runActivate(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "list":
		return runList(ctx, args[1:])
	case "delete":
		return runDelete(ctx, args[1:])
	case "simulate":
		return runSimulate(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "render":
		return runRender(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runGrow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grow", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	brain := bindBrainFlags(fs)
	id := fs.String("id", "", "brain id (random when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(fs, common, brain)
	if err != nil {
		return err
	}
	network, err := buildNetwork(cfg.Brain)
	if err != nil {
		return err
	}

	brainID := *id
	if brainID == "" {
		brainID = uuid.NewString()
	}

	store, err := openStore(ctx, cfg.Store.Kind, cfg.Store.SQLitePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	record := storage.BrainRecordFromNetwork(brainID, network)
	if err := store.SaveBrain(ctx, record); err != nil {
		return err
	}

	log.Infof("saved brain %s to %s store", brainID, cfg.Store.Kind)
	fmt.Fprintf(stdout, "grew brain id=%s topology=%v connections=%d store=%s\n",
		brainID, record.Topology(), len(network.Connections()), cfg.Store.Kind)
	return nil
}

func runActivate(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("activate", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	brain := bindBrainFlags(fs)
	inputs := fs.String("inputs", "", "comma separated input values")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(fs, common, brain)
	if err != nil {
		return err
	}
	values, err := parseFloats(*inputs)
	if err != nil {
		return err
	}
	network, err := buildNetwork(cfg.Brain)
	if err != nil {
		return err
	}

	outputs, err := network.Activate(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "outputs=%s\n", formatValues(outputs))
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	id := fs.String("id", "", "brain id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("show requires --id")
	}

	cfg, err := loadSettings(fs, common, nil)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg.Store.Kind, cfg.Store.SQLitePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	record, ok, err := store.GetBrain(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("brain not found: %s", *id)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(payload))
	return nil
}

func runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(fs, common, nil)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg.Store.Kind, cfg.Store.SQLitePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	ids, err := store.ListBrains(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(stdout, id)
	}
	return nil
}

func runDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	common := bindCommonFlags(fs)
	id := fs.String("id", "", "brain id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("delete requires --id")
	}

	cfg, err := loadSettings(fs, common, nil)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg.Store.Kind, cfg.Store.SQLitePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.DeleteBrain(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted brain id=%s\n", *id)
	return nil
}

func openStore(ctx context.Context, kind, path string) (storage.Store, error) {
	store, err := storage.NewStore(kind, path)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, err
	}
	return store, nil
}

func formatValues(values []float64) string {
	formatted := make([]string, len(values))
	for i, value := range values {
		formatted[i] = fmt.Sprintf("%.6f", value)
	}
	return strings.Join(formatted, ",")
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: creaturectl <grow|activate|show|list|delete|simulate|runs|render> [flags]", msg)
}
