// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the hangman and crossword solver CLI and IPC server.

WordSolve takes a partially revealed word and the letters already known to be
wrong, and lists the words that still fit together with how often each
remaining letter occurs among them, so the next guess can be picked.

# Usage

Solve one pattern. Unknown letters are written as _, ?, # or -:

	wordsolve -input "br___" -invalid "st" -language en

Count letters over whole words instead of the unknown slots only:

	wordsolve -input "br___" -crossword

Use a local list instead of downloading one:

	wordsolve -input "b__" -file words.txt

Run the interactive shell, or solve a file of queries:

	wordsolve -c
	wordsolve -batch queries.txt

Each line of a batch file (and each line in the shell) is PATTERN [INVALID].
Quote a pattern that contains spaces. Batch lines starting with "# " are
comments.

# Server Mode

With -server the solver speaks msgpack over stdin/stdout, see package server.

	{"id": "req1", "p": "br___", "i": "st", "l": "en", "m": 5}

# Configuration

Defaults are read from config.toml in the user config dir, created on first
run:

	[solver]
	default_max_words = 10
	crossword = false
	casing_language = "und"

	[wordlist]
	base_url = "https://asozial.org/hangman-loeser/worte"
	default_language = "de_umlauts"
	timeout_seconds = 10
	retry_attempts = 3
	retry_delay_ms = 200
	cache_size = 16

	[server]
	default_max_words = 10
	max_words_limit = 1000

	[cli]
	history_file = ""
	batch_workers = 4

Flags given on the command line win over the file.

# Command Line Flags

	-input string      pattern to solve
	-invalid string    letters not in the word
	-language string   word list to use (de, de_umlauts, en)
	-maxwords int      number of words to print
	-crossword         count letters over whole words
	-file string       local .txt word list
	-c                 interactive shell
	-batch string      file of queries, - for stdin
	-server            msgpack IPC server
	-config string     config file path
	-rebuild-config    overwrite the default config file with defaults
	-d                 debug logging
	-version           show version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordsolve/internal/cli"
	"github.com/bastiangx/wordsolve/internal/format"
	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/server"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/bastiangx/wordsolve/pkg/wordlist"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordsolve"
	gh      = "https://github.com/bastiangx/wordsolve"
)

// source is what both the server and the cli read indexed lists from.
type source interface {
	Index(ctx context.Context, language string, length int) (*solver.WordIndex, error)
	Stats() map[string]int
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main parses flags, loads config and hands off to the selected mode.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a config.toml")
	input := flag.String("input", "", "Pattern to solve, unknown letters as _ ? # or -")
	invalid := flag.String("invalid", "", "Letters known not to be in the word")
	lang := flag.String("language", defaults.WordList.DefaultLanguage, "Word list language (de, de_umlauts, en)")
	maxWords := flag.Int("maxwords", defaults.Solver.DefaultMaxWords, "Number of words to print")
	crossword := flag.Bool("crossword", defaults.Solver.Crossword, "Count letters over whole words")
	wordFile := flag.String("file", "", "Local .txt word list instead of downloading one")
	cliMode := flag.Bool("c", false, "Run the interactive shell")
	batchFile := flag.String("batch", "", "Solve every line of a file (- for stdin)")
	serverMode := flag.Bool("server", false, "Run the msgpack IPC server on stdin/stdout")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the default config.toml with defaults")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	if *rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		path, _ := config.GetDefaultConfigPath()
		fmt.Fprintf(os.Stderr, "Wrote default config to %s\n", path)
		os.Exit(0)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// flags the user actually typed win over the config file
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["language"] {
		*lang = cfg.WordList.DefaultLanguage
	}
	if !set["maxwords"] {
		*maxWords = cfg.Solver.DefaultMaxWords
	}
	if !set["crossword"] {
		*crossword = cfg.Solver.Crossword
	}

	tag, err := language.Parse(cfg.Solver.CasingLanguage)
	if err != nil {
		log.Warnf("Unknown casing_language %q, using und: %v", cfg.Solver.CasingLanguage, err)
		tag = language.Und
	}
	s := solver.New(solver.WithLanguage(tag))

	var src source
	if *wordFile != "" {
		words, err := wordlist.LoadFile(*wordFile)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		src = wordlist.NewStaticSource(words, s)
	} else {
		if !wordlist.ValidLanguage(*lang) {
			log.Fatalf("Unknown language %q, valid: %v", *lang, wordlist.Languages())
		}
		fetcher := wordlist.NewFetcher(cfg.WordList.BaseURL, cfg.WordList.Timeout(),
			cfg.WordList.RetryAttempts, cfg.WordList.RetryDelay())
		src = wordlist.NewSource(fetcher, wordlist.NewCache(cfg.WordList.CacheSize), s)
	}

	ctx := context.Background()

	if *serverMode {
		log.Debug("spawning IPC")
		if set["language"] {
			cfg.WordList.DefaultLanguage = *lang
		}
		srv := server.NewServer(s, src, cfg)
		showStartupInfo(cfg, *wordFile)
		if err := srv.Start(ctx); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
		return
	}

	handler := cli.NewInputHandler(s, src, format.ForTerminal(os.Stdout), cli.Settings{
		Language:  wordlist.NormalizeLanguage(*lang),
		MaxWords:  *maxWords,
		Crossword: *crossword,
	})

	switch {
	case *batchFile != "":
		if err := runBatch(ctx, handler, *batchFile, cfg.CLI.BatchWorkers); err != nil {
			log.Fatalf("Batch: %v", err)
		}
	case *cliMode:
		log.SetReportTimestamp(false)
		if err := handler.Start(ctx, cfg.CLI.HistoryFile); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	case *input != "":
		result, err := handler.Solve(ctx, *input, *invalid)
		if err != nil {
			log.Fatalf("Failed to solve %q: %v", *input, err)
		}
		fmt.Println(format.ForTerminal(os.Stdout).Format(result))
	default:
		fmt.Fprintf(os.Stderr, "%s: give -input, -c, -batch or -server\n\n", AppName)
		flag.Usage()
		os.Exit(2)
	}
}

// runBatch solves the queries in path, or stdin for "-". The file is
// closed before returning so a failing batch can exit right after.
func runBatch(ctx context.Context, handler *cli.InputHandler, path string, workers int) error {
	if path == "-" {
		return handler.Batch(ctx, os.Stdin, os.Stdout, workers)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()
	return handler.Batch(ctx, f, os.Stdout, workers)
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordSolve ] Finds the words that fit your hangman board")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints basic info to stderr; stdout is reserved for IPC.
func showStartupInfo(cfg *config.Config, wordFile string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" WordSolve ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	if wordFile != "" {
		log.Infof("word list: ( %s )", wordFile)
	} else {
		log.Infof("word lists: ( %s ), default %s", cfg.WordList.BaseURL, cfg.WordList.DefaultLanguage)
	}
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
