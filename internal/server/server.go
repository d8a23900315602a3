package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/audit"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/ocr"
)

// Name identifies the server in the initialize handshake.
const Name = "color-tools-mcp"

// Version is overridden at build time by the command.
var Version = "0.1.0"

// maxRequestSize bounds a single JSON-RPC line.
const maxRequestSize = 1024 * 1024

// Server handles MCP protocol communication
type Server struct {
	cfg         config.Config
	log         *slog.Logger
	parser      color.Parser
	conversions *color.Cache // nil when caching is disabled
	cache       *imaging.ImageCache
	locator     audit.Locator
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON-RPC error codes used by the server.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// New creates a server from cfg. A nil logger discards log output.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		cfg:    cfg,
		log:    logger,
		parser: color.Parser{Strict: cfg.Strict},
		cache:  imaging.NewImageCache(),
		locator: &ocr.Tesseract{
			Language:      cfg.OCRLanguage,
			MinConfidence: cfg.MinOCRConfidence,
		},
	}
	if cfg.CacheConversions {
		s.conversions = color.NewCache(cfg.CacheLimit)
	}
	return s
}

// Run serves MCP on stdin and stdout until stdin is closed.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC message per line from r and writes responses to
// w. Notifications produce no output.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxRequestSize)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		var resp *MCPResponse
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("failed to parse request", "err", err)
			resp = s.errorResponse(nil, codeParseError, "Parse error", err.Error())
		} else {
			resp = s.handleRequest(&req)
		}

		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.log.Error("failed to encode response", "err", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.log.Debug("request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	}
	if strings.HasPrefix(req.Method, "notifications/") {
		// notifications/initialized, notifications/cancelled: no response
		return nil
	}
	return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    Name,
				"version": Version,
			},
		},
	}
}
