package main

import (
	"flag"
	"log"
	"os"

	"github.com/rs/zerolog"

	"go.creack.net/calc/config"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/repl"
)

func main() {
	log.SetFlags(0)
	var (
		cfgPath, level      string
		strict, dump, quiet bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to a YAML configuration file")
	flag.BoolVar(&strict, "strict", false, "reject identifiers that are not constants or functions")
	flag.BoolVar(&dump, "ast", false, "print the parse tree of every expression")
	flag.StringVar(&level, "log-level", "", "log level (default from config, warn)")
	flag.BoolVar(&quiet, "q", false, "do not print the banner")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		c, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Fail: %s.", err)
		}
		cfg = c
	}
	if level == "" {
		level = cfg.LogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	opts := []repl.SessionOption{
		repl.WithLogger(logger),
		repl.WithPrompt(cfg.Prompt),
		repl.WithFormat(cfg.Format),
		repl.WithShowAST(cfg.ShowAST || dump),
		repl.WithVariables(cfg.Variables),
	}
	if cfg.StrictIdentifiers || strict {
		opts = append(opts, repl.WithParseOptions(parser.StrictIdentifiers()))
	}
	session := repl.NewSession(opts...)
	logger.Debug().Str("config", cfgPath).Int("variables", len(cfg.Variables)).Msg("session ready")

	if flag.NArg() > 0 {
		failed := false
		for _, arg := range flag.Args() {
			if !session.EvalLine(arg, os.Stdout, os.Stderr) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	if cfg.Banner && !quiet {
		repl.Banner(os.Stdout)
	}
	if err := session.Run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
