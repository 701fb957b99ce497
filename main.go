package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/deanrtaylor1/gosource/cli"
	"github.com/deanrtaylor1/gosource/config"
	"github.com/deanrtaylor1/gosource/logger"
	"github.com/deanrtaylor1/gosource/report"
	"github.com/deanrtaylor1/gosource/server"
	"github.com/deanrtaylor1/gosource/stem"
	"github.com/deanrtaylor1/gosource/store"
	"github.com/deanrtaylor1/gosource/textmodel"
	"github.com/deanrtaylor1/gosource/util"
)

func help() {
	fmt.Println("GoSource - Guess which of two sources a text most resembles")
	fmt.Println("Version: 0.1")
	fmt.Println("License: MIT")

	fmt.Println("CLI Usage: PROGRAM [SUBCOMMAND] [OPTIONS]")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    build NAME DOC...                build a model from files or URLs and save it")
	fmt.Println("    classify UNKNOWN SOURCE_A SOURCE_B   classify a saved model against two saved sources")
	fmt.Println("    compare UNKNOWN_DOC A_DOC B_DOC  classify documents directly without saving models")
	fmt.Println("    show NAME                        print a summary of a saved model")
	fmt.Println("    cli                              start the interactive cli")
	fmt.Println("    serve                            start the json api")
	fmt.Println("    help                             list all commands")
	fmt.Println("Configuration is read from " + config.DefaultPath + " (or GOSOURCE_CONFIG), .env and GOSOURCE_* variables")
}

func fail(err error) {
	logger.HandleError(err)
	fmt.Fprintln(os.Stderr, util.TerminalRed+err.Error()+util.TerminalReset)
	os.Exit(1)
}

// modelName names a transient model after the document it was built from
func modelName(location string) string {
	if util.IsURL(location) {
		return location
	}
	return strings.TrimSuffix(filepath.Base(location), filepath.Ext(location))
}

func main() {
	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}
	program := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load(os.Getenv("GOSOURCE_CONFIG"))
	if err != nil {
		fail(err)
	}

	stemmer, err := stem.New(cfg.Stemmer)
	if err != nil {
		fail(err)
	}
	if closer, ok := stemmer.(*stem.Snowball); ok {
		defer closer.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	colorize := cfg.Color && report.ShouldColorize(os.Stdout)

	switch program {
	case "build":
		if len(args) < 2 {
			help()
			os.Exit(1)
		}
		name := args[0]
		if err := store.ValidateName(name); err != nil {
			fail(err)
		}
		m, err := textmodel.FromDocuments(ctx, name, stemmer, cfg.FetchTimeout(), args[1:]...)
		if err != nil {
			fail(err)
		}
		if err := store.SaveModel(store.FileOpsImpl{}, cfg.ModelDir, m); err != nil {
			fail(err)
		}
		logger.HandleLog(fmt.Sprintf("saved model %s to %s", name, cfg.ModelDir))
		fmt.Print(report.Summary(m, cfg.TopWords, colorize))

	case "classify":
		if len(args) != 3 {
			help()
			os.Exit(1)
		}
		models := make([]*textmodel.Model, 0, 3)
		for _, name := range args {
			m, err := store.ReadModel(cfg.ModelDir, name)
			if err != nil {
				fail(err)
			}
			models = append(models, m)
		}
		fmt.Print(report.Classification(models[0].Classify(models[1], models[2]), colorize))

	case "compare":
		if len(args) != 3 {
			help()
			os.Exit(1)
		}
		models := make([]*textmodel.Model, 0, 3)
		for _, location := range args {
			m, err := textmodel.FromDocuments(ctx, modelName(location), stemmer, cfg.FetchTimeout(), location)
			if err != nil {
				fail(err)
			}
			models = append(models, m)
		}
		fmt.Print(report.Classification(models[0].Classify(models[1], models[2]), colorize))

	case "show":
		if len(args) != 1 {
			help()
			os.Exit(1)
		}
		m, err := store.ReadModel(cfg.ModelDir, args[0])
		if err != nil {
			fail(err)
		}
		fmt.Print(report.Summary(m, cfg.TopWords, colorize))

	case "cli":
		session := &cli.Session{Config: cfg, Stemmer: stemmer}
		session.InitialPrompt(ctx)

	case "serve":
		if ok, err := util.CheckDirIsValid(cfg.ModelDir); !ok {
			if err != nil {
				fail(err)
			}
			fmt.Println(util.TerminalYellow + "Model directory " + cfg.ModelDir + " does not exist yet, it is created on the first build" + util.TerminalReset)
		}
		fmt.Println(util.TerminalCyan + "Serving models from " + cfg.ModelDir + util.TerminalReset)
		srv := &server.Server{ModelDir: cfg.ModelDir, Stemmer: stemmer}
		if err := srv.Serve(cfg.ServerPort); err != nil {
			fail(err)
		}

	default:
		help()
	}
}
