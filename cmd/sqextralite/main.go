package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/EthanGalbraith/sqextralite/internal/parser"
	"github.com/EthanGalbraith/sqextralite/internal/pkg/logging"
	"github.com/EthanGalbraith/sqextralite/internal/repl"
	"github.com/EthanGalbraith/sqextralite/internal/sqextralite"
)

const defaultDbName = "db"

var (
	promptFlag string
)

func init() {
	flag.StringVar(&promptFlag, "prompt", repl.DefaultPrompt, "Prompt printed before each command")
}

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	aPager := sqextralite.NewPager(logger, sqextralite.MaxPages)
	aDatabase, err := sqextralite.NewDatabase(ctx, logger, defaultDbName, parser.New(), aPager)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := aDatabase.Close(ctx); err != nil {
			fmt.Printf("error closing database: %s\n", err)
		}
	}()

	done := make(chan error, 1)
	go func() {
		done <- repl.New(logger, aDatabase, os.Stdout, promptFlag).Run(ctx, os.Stdin)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			logger.Error("repl stopped", zap.Error(err))
		}
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
		cancel()
	}
}
