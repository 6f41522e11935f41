package lyrion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ironsmile/albumchunks/src/queue"
)

const (
	jsonRPCPath    = "/jsonrpc.js"
	jsonRPCMethod  = "slim.request"
	defaultTimeout = 10 * time.Second
)

// Options configures a Client.
type Options struct {
	// ServerURL is the base URL of the server, e.g. http://192.168.1.2:9000.
	ServerURL string

	// PlayerID is the ID of the player whose queue is used. Usually the MAC
	// address of the player.
	PlayerID string

	// GroupBy selects the track attribute returned as a group key.
	GroupBy queue.GroupBy

	// Timeout is the limit for a single request. Zero means ten seconds.
	Timeout time.Duration

	// Username and Password are used for HTTP basic authentication when the
	// server is password protected.
	Username string
	Password string

	// HTTPClient is used for doing the requests when set. Timeout is ignored
	// in this case.
	HTTPClient *http.Client

	Logger *zap.Logger
}

// Client is a JSON-RPC client for the queue of a single player.
//
// It implements queue.Sequence and queue.Describer. Queue reads may be made
// concurrently, but moves must be serialized by the caller.
type Client struct {
	httpClient *http.Client
	endpoint   string
	player     string
	groupBy    queue.GroupBy
	username   string
	password   string
	logger     *zap.Logger
}

// NewClient returns a Client configured with `opts`.
func NewClient(opts Options) (*Client, error) {
	if opts.PlayerID == "" {
		return nil, errors.New("player ID is required")
	}

	base, err := url.Parse(strings.TrimSuffix(opts.ServerURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing server URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("server URL %q is not a HTTP URL", opts.ServerURL)
	}

	groupBy, err := queue.ParseGroupBy(string(opts.GroupBy))
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   base.String() + jsonRPCPath,
		player:     opts.PlayerID,
		groupBy:    groupBy,
		username:   opts.Username,
		password:   opts.Password,
		logger:     logger,
	}, nil
}

type rpcRequest struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type rpcResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// request sends a single command and returns the "result" object of the
// response. It is nil when the server did not return one.
func (c *Client) request(
	ctx context.Context,
	op string,
	command ...string,
) (map[string]json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		ID:     1,
		Method: jsonRPCMethod,
		Params: []any{c.player, command},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("lyrion request",
		zap.Strings("command", command),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &ProtocolError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return decoded.Result, nil
}

// query sends a command and requires the response to carry a result object.
func (c *Client) query(
	ctx context.Context,
	op string,
	command ...string,
) (map[string]json.RawMessage, error) {
	result, err := c.request(ctx, op, command...)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &ProtocolError{Op: op, Field: "result", Err: errors.New("missing")}
	}
	return result, nil
}

// intField returns the integer under `name`. The server encodes numbers
// either as JSON numbers or as strings.
func intField(op string, result map[string]json.RawMessage, name string) (int, error) {
	raw, ok := result[name]
	if !ok {
		return 0, &ProtocolError{Op: op, Field: name, Err: errors.New("missing")}
	}

	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0, &ProtocolError{Op: op, Field: name, Err: err}
	}

	switch v := val.(type) {
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, &ProtocolError{
				Op:    op,
				Field: name,
				Err:   fmt.Errorf("%s is not an integer", raw),
			}
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &ProtocolError{Op: op, Field: name, Err: err}
		}
		return n, nil
	}

	return 0, &ProtocolError{
		Op:    op,
		Field: name,
		Err:   fmt.Errorf("unexpected value %s", raw),
	}
}

// stringField returns the string under `name` or `fallback` when the server
// did not send one. Tracks without tags have no album, artist or title.
func stringField(
	op string,
	result map[string]json.RawMessage,
	name string,
	fallback string,
) (string, error) {
	raw, ok := result[name]
	if !ok || string(raw) == "null" {
		return fallback, nil
	}

	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return "", &ProtocolError{Op: op, Field: name, Err: err}
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	return "", &ProtocolError{
		Op:    op,
		Field: name,
		Err:   fmt.Errorf("unexpected value %s", raw),
	}
}
