package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/aretw0/utilkit/pkg/hashing"
	"github.com/aretw0/utilkit/pkg/numeric"
	"github.com/aretw0/utilkit/pkg/text"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type toolFunc func(request mcp.CallToolRequest) (string, error)

// handle adapts fn to the mcp-go handler signature. Failures become tool error
// results so the client sees the message instead of a protocol error.
func (s *Server) handle(name string, fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := fn(request)
		if err != nil {
			s.logger.Warn("MCP tool call rejected", "tool", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.logger.Debug("MCP tool call", "tool", name)
		return mcp.NewToolResultText(out), nil
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
}

func (s *Server) requireText(request mcp.CallToolRequest, key string) (string, error) {
	in, err := request.RequireString(key)
	if err != nil {
		return "", invalid(err)
	}
	if len(in) > s.maxInputSize {
		return "", fmt.Errorf("%w: %s is %d bytes, limit is %d", domain.ErrInvalidArgument, key, len(in), s.maxInputSize)
	}
	return in, nil
}

func (s *Server) textTool(fn func(string) string) toolFunc {
	return func(request mcp.CallToolRequest) (string, error) {
		in, err := s.requireText(request, "text")
		if err != nil {
			return "", err
		}
		return fn(in), nil
	}
}

func (s *Server) randomPassword(request mcp.CallToolRequest) (string, error) {
	length := request.GetInt("length", s.passwordLength)
	if length > s.maxInputSize {
		return "", fmt.Errorf("%w: length %d exceeds limit %d", domain.ErrInvalidArgument, length, s.maxInputSize)
	}

	opts := []text.PasswordOption{
		text.WithLetters(request.GetBool("letters", true)),
		text.WithDigits(request.GetBool("digits", true)),
		text.WithSymbols(request.GetBool("symbols", true)),
	}
	if charset := request.GetString("charset", ""); charset != "" {
		opts = append(opts, text.WithCharset(charset))
	}
	return text.RandomPassword(length, opts...)
}

func (s *Server) calculateHash(request mcp.CallToolRequest) (string, error) {
	in, err := s.requireText(request, "text")
	if err != nil {
		return "", err
	}

	alg := s.algorithm
	if name := request.GetString("algorithm", ""); name != "" {
		if alg, err = hashing.ParseAlgorithm(name); err != nil {
			return "", err
		}
	}
	return hashing.Sum(in, alg)
}

func (s *Server) isPrime(request mcp.CallToolRequest) (string, error) {
	n, err := request.RequireInt("n")
	if err != nil {
		return "", invalid(err)
	}
	return strconv.FormatBool(numeric.IsPrime(n)), nil
}

func (s *Server) generatePrimes(request mcp.CallToolRequest) (string, error) {
	limit, err := request.RequireInt("limit")
	if err != nil {
		return "", invalid(err)
	}
	if limit > s.maxInputSize*16 {
		return "", fmt.Errorf("%w: limit %d exceeds %d", domain.ErrInvalidArgument, limit, s.maxInputSize*16)
	}
	primes, err := numeric.PrimesChecked(limit)
	if err != nil {
		return "", err
	}
	return marshal(primes)
}

func (s *Server) factorial(request mcp.CallToolRequest) (string, error) {
	n, err := request.RequireInt("n")
	if err != nil {
		return "", invalid(err)
	}
	if n > s.maxInputSize {
		return "", fmt.Errorf("%w: n %d exceeds limit %d", domain.ErrInvalidArgument, n, s.maxInputSize)
	}
	f, err := numeric.Factorial(n)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

func (s *Server) distance(request mcp.CallToolRequest) (string, error) {
	var coords [4]float64
	for i, key := range []string{"x1", "y1", "x2", "y2"} {
		v, err := request.RequireFloat(key)
		if err != nil {
			return "", invalid(err)
		}
		coords[i] = v
	}
	d := numeric.Distance(
		numeric.Point{X: coords[0], Y: coords[1]},
		numeric.Point{X: coords[2], Y: coords[3]},
	)
	return strconv.FormatFloat(d, 'g', -1, 64), nil
}

func (s *Server) listTool(op func(a, b []any) []any) toolFunc {
	return func(request mcp.CallToolRequest) (string, error) {
		a, err := s.requireList(request, "a")
		if err != nil {
			return "", err
		}
		b, err := s.requireList(request, "b")
		if err != nil {
			return "", err
		}
		return marshal(op(a, b))
	}
}

// requireList decodes a JSON array argument. Only scalar members are accepted
// since they are compared by value.
func (s *Server) requireList(request mcp.CallToolRequest, key string) ([]any, error) {
	raw, err := s.requireText(request, key)
	if err != nil {
		return nil, err
	}

	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON array: %w", domain.ErrInvalidArgument, key, err)
	}
	for i, item := range items {
		switch item.(type) {
		case nil, string, float64, bool:
		default:
			return nil, fmt.Errorf("%w: %s[%d] is not a scalar", domain.ErrInvalidArgument, key, i)
		}
	}
	return items, nil
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
