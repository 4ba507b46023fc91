package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/pkg/checker"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrInvalidRequest is returned by Serve when the input stream cannot be decoded.
var ErrInvalidRequest = errors.New("invalid request stream")

// Server handles the IPC for spell checking
type Server struct {
	checker      checker.IChecker
	config       *config.Config
	log          *log.Logger
	requestCount int
}

// NewServer creates a new server answering from chk
func NewServer(chk checker.IChecker, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		checker: chk,
		config:  cfg,
		log:     logger.New("server"),
	}
}

// Start serves requests from stdin until it is closed
func (s *Server) Start() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve decodes requests from r and writes one response per request to w.
// It returns nil when r reaches EOF.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	enc := msgpack.NewEncoder(w)

	s.log.Debug("Starting server")
	if err := enc.Encode(StatusResponse{Status: "ready"}); err != nil {
		return fmt.Errorf("failed to send ready status: %w", err)
	}

	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.send(enc, ErrorResponse{Error: "invalid msgpack request", Code: 400})
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		s.requestCount++
		s.send(enc, s.handleRequest(req))
	}
}

func (s *Server) send(enc *msgpack.Encoder, response any) {
	if err := enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// handleRequest dispatches a request by its action and returns the response to send.
func (s *Server) handleRequest(req Request) any {
	switch req.Action {
	case ActionHealth:
		return StatusResponse{ID: req.ID, Status: "ok"}
	case ActionStats:
		return StatsResponse{ID: req.ID, Stats: s.checker.Stats()}
	case ActionCheck, ActionNearest, ActionAdd, ActionComplete:
	default:
		return errorf(req.ID, 400, "unknown action: %s", req.Action)
	}

	if maxLen := s.config.Server.MaxWordLen; maxLen > 0 && len(req.Word) > maxLen {
		s.log.Debug("Word is too long in request", "id", req.ID, "len", len(req.Word))
		return errorf(req.ID, 400, "word exceeds maximum length of %d bytes", maxLen)
	}

	switch req.Action {
	case ActionCheck:
		return CheckResponse{ID: req.ID, Word: req.Word, Found: s.checker.IsInDictionary(req.Word)}
	case ActionAdd:
		s.checker.AddWord(req.Word)
		s.log.Debugf("Added '%s' to dictionary", req.Word)
		return StatusResponse{ID: req.ID, Status: "ok"}
	case ActionNearest:
		start := time.Now()
		words := s.checker.NearestWords(req.Word)
		return newWordsResponse(req.ID, words, time.Since(start))
	default:
		return s.handleComplete(req)
	}
}

func (s *Server) handleComplete(req Request) any {
	if req.Word == "" {
		return errorf(req.ID, 400, "missing prefix")
	}
	limit := req.Limit
	if limit < 1 {
		limit = s.config.Server.CompleteLimit
	}
	start := time.Now()
	words := s.checker.Complete(req.Word, limit)
	return newWordsResponse(req.ID, words, time.Since(start))
}

func newWordsResponse(id string, words []string, elapsed time.Duration) WordsResponse {
	if words == nil {
		words = []string{}
	}
	return WordsResponse{
		ID:        id,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	}
}

func errorf(id string, code int, format string, args ...any) ErrorResponse {
	return ErrorResponse{ID: id, Error: fmt.Sprintf(format, args...), Code: code}
}
