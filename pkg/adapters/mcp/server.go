package mcp

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/utilkit"
	"github.com/aretw0/utilkit/pkg/hashing"
	"github.com/aretw0/utilkit/pkg/sets"
	"github.com/aretw0/utilkit/pkg/text"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultMaxInputSize bounds text arguments and password lengths (64KB).
const DefaultMaxInputSize = 64 * 1024

// Server exposes the utilkit helpers as MCP tools.
type Server struct {
	mcpServer      *server.MCPServer
	logger         *slog.Logger
	passwordLength int
	algorithm      hashing.Algorithm
	maxInputSize   int
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used to report rejected tool calls.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPasswordLength sets the length used when random_password omits one.
func WithPasswordLength(n int) Option {
	return func(s *Server) {
		s.passwordLength = n
	}
}

// WithDefaultAlgorithm sets the digest used when calculate_hash omits one.
func WithDefaultAlgorithm(alg hashing.Algorithm) Option {
	return func(s *Server) {
		s.algorithm = alg
	}
}

// WithMaxInputSize overrides DefaultMaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.maxInputSize = n
	}
}

// NewServer creates a new MCP Server instance with every tool registered.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger:         slog.Default(),
		passwordLength: text.DefaultPasswordLength,
		algorithm:      hashing.Default,
		maxInputSize:   DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer("utilkit-mcp", strings.TrimSpace(utilkit.Version),
		server.WithToolCapabilities(false),
	)
	s.mcpServer.AddTools(s.Tools()...)
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tools returns the tool definitions with their handlers.
func (s *Server) Tools() []server.ServerTool {
	textArg := func() mcp.ToolOption {
		return mcp.WithString("text", mcp.Required(), mcp.Description("Input text"))
	}
	listArg := func(name string) mcp.ToolOption {
		return mcp.WithString(name, mcp.Required(), mcp.Description("JSON array of strings, numbers or booleans"))
	}

	return []server.ServerTool{
		{
			Tool: mcp.NewTool("random_password",
				mcp.WithDescription("Generate a random password from crypto/rand."),
				mcp.WithNumber("length", mcp.Description(fmt.Sprintf("Password length (default %d)", s.passwordLength))),
				mcp.WithBoolean("letters", mcp.DefaultBool(true), mcp.Description("Include ASCII letters")),
				mcp.WithBoolean("digits", mcp.DefaultBool(true), mcp.Description("Include digits")),
				mcp.WithBoolean("symbols", mcp.DefaultBool(true), mcp.Description("Include punctuation")),
				mcp.WithString("charset", mcp.Description("Explicit alphabet, overrides the toggles")),
			),
			Handler: s.handle("random_password", s.randomPassword),
		},
		{
			Tool:    mcp.NewTool("camel_to_snake", mcp.WithDescription("Convert camelCase to snake_case."), textArg()),
			Handler: s.handle("camel_to_snake", s.textTool(text.CamelToSnake)),
		},
		{
			Tool:    mcp.NewTool("snake_to_camel", mcp.WithDescription("Convert snake_case to lowerCamelCase."), textArg()),
			Handler: s.handle("snake_to_camel", s.textTool(text.SnakeToCamel)),
		},
		{
			Tool:    mcp.NewTool("reverse_string", mcp.WithDescription("Reverse the characters of a string."), textArg()),
			Handler: s.handle("reverse_string", s.textTool(text.Reverse)),
		},
		{
			Tool:    mcp.NewTool("count_vowels", mcp.WithDescription("Count vowels, ignoring case."), textArg()),
			Handler: s.handle("count_vowels", s.textTool(func(in string) string { return strconv.Itoa(text.CountVowels(in)) })),
		},
		{
			Tool:    mcp.NewTool("remove_duplicates", mcp.WithDescription("Keep the first occurrence of each character."), textArg()),
			Handler: s.handle("remove_duplicates", s.textTool(text.RemoveDuplicates)),
		},
		{
			Tool:    mcp.NewTool("normalize_text", mcp.WithDescription("Strip accents and lower-case."), textArg()),
			Handler: s.handle("normalize_text", s.textTool(text.Normalize)),
		},
		{
			Tool:    mcp.NewTool("is_palindrome", mcp.WithDescription("Check for a palindrome, ignoring case and punctuation."), textArg()),
			Handler: s.handle("is_palindrome", s.textTool(func(in string) string { return strconv.FormatBool(text.IsPalindrome(in)) })),
		},
		{
			Tool: mcp.NewTool("calculate_hash",
				mcp.WithDescription("Hex digest of the text."),
				textArg(),
				mcp.WithString("algorithm",
					mcp.Description(fmt.Sprintf("Digest algorithm (default %s)", s.algorithm)),
					mcp.Enum(algorithmNames()...),
				),
			),
			Handler: s.handle("calculate_hash", s.calculateHash),
		},
		{
			Tool: mcp.NewTool("is_prime",
				mcp.WithDescription("Check whether an integer is prime."),
				mcp.WithNumber("n", mcp.Required(), mcp.Description("Integer to test")),
			),
			Handler: s.handle("is_prime", s.isPrime),
		},
		{
			Tool: mcp.NewTool("generate_primes",
				mcp.WithDescription("List every prime up to a limit."),
				mcp.WithNumber("limit", mcp.Required(), mcp.Description("Inclusive upper bound")),
			),
			Handler: s.handle("generate_primes", s.generatePrimes),
		},
		{
			Tool: mcp.NewTool("factorial",
				mcp.WithDescription("Compute n! with arbitrary precision."),
				mcp.WithNumber("n", mcp.Required(), mcp.Description("Non-negative integer")),
			),
			Handler: s.handle("factorial", s.factorial),
		},
		{
			Tool: mcp.NewTool("calculate_distance",
				mcp.WithDescription("Euclidean distance between (x1, y1) and (x2, y2)."),
				mcp.WithNumber("x1", mcp.Required()),
				mcp.WithNumber("y1", mcp.Required()),
				mcp.WithNumber("x2", mcp.Required()),
				mcp.WithNumber("y2", mcp.Required()),
			),
			Handler: s.handle("calculate_distance", s.distance),
		},
		{
			Tool:    mcp.NewTool("list_intersection", mcp.WithDescription("Members present in both lists."), listArg("a"), listArg("b")),
			Handler: s.handle("list_intersection", s.listTool(sets.Intersection[any])),
		},
		{
			Tool:    mcp.NewTool("list_union", mcp.WithDescription("Members present in either list."), listArg("a"), listArg("b")),
			Handler: s.handle("list_union", s.listTool(sets.Union[any])),
		},
		{
			Tool:    mcp.NewTool("list_difference", mcp.WithDescription("Members of a that are not in b."), listArg("a"), listArg("b")),
			Handler: s.handle("list_difference", s.listTool(sets.Difference[any])),
		},
	}
}

func algorithmNames() []string {
	algs := hashing.Algorithms()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = string(alg)
	}
	return names
}
