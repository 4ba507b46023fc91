// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spell checking server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

SpellServe loads a plain word list into a trie and answers two questions about
a word: is it in the dictionary, and if not, which dictionary words sit
closest to it in alphabetical order. It can run as a MessagePack IPC server
for editors, or as an interactive CLI for testing.

# Usage

Start the server with the default dictionary:

	spellserve

Use a UTF-8 word list and enable debug logging:

	spellserve -dict /usr/share/dict/words -encoding utf-8 -d

Check words interactively:

	spellserve -c

Reproduce the classic demo: look up "aaaa", add it, look it up again:

	spellserve -demo

# Dictionary

The dictionary is a text file with one word per line. Surrounding whitespace
is trimmed and blank lines are skipped. The file is decoded with the
configured encoding (macroman by default; utf-8, latin1 and windows-1252 are
also supported). A missing or unreadable file is reported once and the
checker starts with an empty dictionary.

With -watch, the file is reloaded whenever it changes on disk. Words added at
runtime survive a reload.

# Configuration

Runtime configuration lives in a TOML file which is created with defaults if
it doesn't exist:

	[server]
	max_word_len = 60
	complete_limit = 10

	[dict]
	path = "dictionary.txt"
	encoding = "macroman"
	cache_size = 1024
	watch = false

	[cli]
	complete_limit = 24
	no_filter = false

# Command Line Flags

	-dict string
	    Dictionary file (default from config)
	-encoding string
	    Dictionary encoding (default from config)
	-config string
	    Path to a custom config file
	-cache int
	    Nearest-words cache size, 0 to disable
	-watch
	    Reload the dictionary when it changes
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-demo
	    Run the demo and exit
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/checker"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler cancels the returned context and exits normally on OS signals.
func sigHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
	return ctx
}

// main only manages the flow; the server, CLI and checker live in their own packages.
func main() {
	ctx := sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictFlag := flag.String("dict", "", "Dictionary file, one word per line (default from config)")
	encodingFlag := flag.String("encoding", "", "Dictionary encoding: utf-8, macroman, latin1, windows-1252 (default from config)")
	configFlag := flag.String("config", "", "Path to a custom config file")
	cacheSize := flag.Int("cache", -1, "Nearest-words cache size, 0 to disable (default from config)")
	watch := flag.Bool("watch", false, "Reload the dictionary when the file changes")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	demo := flag.Bool("demo", false, "Look up 'aaaa', add it, look it up again and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	var appConfig *config.Config
	configPath := *configFlag
	if configPath != "" {
		appConfig, configPath, err = config.LoadConfigWithPriority(configPath)
	} else {
		configPath = pathResolver.GetConfigPath("config.toml")
		appConfig, err = config.InitConfig(configPath)
	}
	if err != nil {
		log.Warnf("Failed to load config: %v. Using builtin defaults...", err)
		appConfig = config.DefaultConfig()
	}
	log.Debugf("Using config file: (%s)", configPath)

	applyFlags(appConfig, *dictFlag, *encodingFlag, *cacheSize, *watch)

	enc, err := dictionary.ParseEncoding(appConfig.Dict.Encoding)
	if err != nil {
		log.Fatalf("Invalid dictionary encoding: %v", err)
	}

	dictPath := pathResolver.ResolveDictPath(appConfig.Dict.Path)
	if utils.IsRegularFile(dictPath) {
		if err := dictionary.ValidateFile(dictPath); err != nil {
			log.Warnf("Dictionary may not load correctly: %v", err)
		}
	}
	loader := dictionary.NewLoader(dictPath, enc)

	chk := checker.FromSource(loader, checker.WithCache(appConfig.Dict.CacheSize))
	log.Debugf("Checker ready: %d words from %s (%s)", chk.Len(), dictPath, enc)

	if *demo {
		runDemo(os.Stdout, chk)
		return
	}

	if appConfig.Dict.Watch {
		go func() {
			err := dictionary.Watch(ctx, dictPath, dictionary.DefaultDebounce, func() {
				chk.Reload(loader.Words())
				log.Infof("Dictionary reloaded: %d words", chk.Len())
			})
			if err != nil {
				log.Errorf("Dictionary watcher stopped: %v", err)
			}
		}()
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(chk, appConfig.Server.MaxWordLen, appConfig.CLI.CompleteLimit, appConfig.CLI.NoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(chk, appConfig)
	showStartupInfo(dictPath, chk.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *config.Config, dict, encoding string, cacheSize int, watch bool) {
	if dict != "" {
		cfg.Dict.Path = dict
	}
	if encoding != "" {
		cfg.Dict.Encoding = encoding
	}
	if cacheSize >= 0 {
		cfg.Dict.CacheSize = cacheSize
	}
	if watch {
		cfg.Dict.Watch = true
	}
}

// runDemo looks up "aaaa", adds it, and looks it up again.
func runDemo(w io.Writer, chk checker.IChecker) {
	fmt.Fprintln(w, chk.NearestWords("aaaa"))
	chk.AddWord("aaaa")
	fmt.Fprintln(w, chk.NearestWords("aaaa"))
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ SpellServe ] Checks words against a dictionary, fast")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dictPath string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "============")
	fmt.Fprintln(os.Stderr, " SpellServe ")
	fmt.Fprintln(os.Stderr, "============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s ), %s words", dictPath, utils.FormatWithCommas(words))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "============")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
