// Package cli handles cmd line input for checking words by hand, mostly for DBG and testing
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/checker"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// InputHandler reads words from the user and reports whether they are in the
// dictionary, along with the nearest words when they are not.
// Lines starting with ':' are commands:
//
//	:add <word>        add a word to the dictionary
//	:complete <prefix> list words starting with prefix
//	:stats             print dictionary stats
type InputHandler struct {
	checker       checker.IChecker
	maxWordLength int
	completeLimit int
	requestCount  int
	noFilter      bool
	log           *log.Logger
	wordStyle     lipgloss.Style
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(chk checker.IChecker, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		checker:       chk,
		maxWordLength: maxLength,
		completeLimit: limit,
		noFilter:      noFilter,
	}
}

// Start runs the loop on stdin, printing to stderr.
func (h *InputHandler) Start() error {
	return h.Run(os.Stdin, os.Stderr)
}

// Run reads lines from r until EOF and writes results to w.
func (h *InputHandler) Run(r io.Reader, w io.Writer) error {
	h.log = logger.NewWithWriter(w, "")
	h.wordStyle = lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("75"))
	h.log.Print("SpellServe CLI [BETA]")
	h.log.Print("type a word and press Enter to check it, :add, :complete or :stats for more (Ctrl+C to exit):")

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	if cmd, ok := strings.CutPrefix(line, ":"); ok {
		h.handleCommand(cmd)
		return
	}
	if !h.accept(line) {
		return
	}

	start := time.Now()
	if h.checker.IsInDictionary(line) {
		h.log.Printf("'%s' is in dictionary", h.wordStyle.Render(line))
		return
	}
	nearest := h.checker.NearestWords(line)
	log.Debugf("Took [ %v ] for word '%s' (request %d)", time.Since(start), line, h.requestCount)

	if len(nearest) == 0 {
		h.log.Printf("'%s' not found, dictionary is empty", line)
		return
	}
	h.log.Printf("'%s' not found, nearest words:", line)
	for i, word := range nearest {
		h.log.Printf("%2d. %s", i+1, h.wordStyle.Render(word))
	}
}

func (h *InputHandler) handleCommand(cmd string) {
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "add":
		if !h.accept(arg) {
			return
		}
		h.checker.AddWord(arg)
		h.log.Printf("added '%s'", h.wordStyle.Render(arg))
	case "complete":
		if arg == "" {
			h.log.Error("Missing prefix for :complete")
			return
		}
		words := h.checker.Complete(arg, h.completeLimit)
		if len(words) == 0 {
			h.log.Printf("No words found for prefix: '%s'", arg)
			return
		}
		h.log.Printf("Found %d words for prefix '%s':", len(words), arg)
		for i, word := range words {
			h.log.Printf("%2d. %s", i+1, h.wordStyle.Render(word))
		}
	case "stats":
		stats := h.checker.Stats()
		keys := make([]string, 0, len(stats))
		for k := range stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.log.Printf("%-12s %10s", k, utils.FormatWithCommas(stats[k]))
		}
	default:
		h.log.Errorf("Unknown command: :%s", name)
	}
}

// accept applies the length limit and, unless disabled, the input filter.
func (h *InputHandler) accept(word string) bool {
	if h.maxWordLength > 0 && len(word) > h.maxWordLength {
		h.log.Errorf("Word too long: %s", word)
		return false
	}
	if h.noFilter {
		return true
	}
	if !utils.IsValidInput(word) {
		h.log.Printf("Skipping input: '%s'", word)
		return false
	}
	return true
}
