package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/todobot/internal/config"
	"github.com/sandeepkv93/todobot/internal/httpapi"
	"github.com/sandeepkv93/todobot/internal/storage"
	"github.com/sandeepkv93/todobot/internal/tasks"
)

func main() {
	cfg, err := config.Load(flag.NewFlagSet("todobot", flag.ExitOnError), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "todobot failed: %v\n", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("open task database", "err", err)
	}
	defer repo.Close()

	srv, err := httpapi.New(tasks.NewService(repo), logger)
	if err != nil {
		logger.Fatal("build http server", "err", err)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		_ = srv.Shutdown()
	}()

	logger.Info("todobot listening", "addr", cfg.ListenAddr, "db", cfg.DBPath)
	if err := srv.Listen(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
