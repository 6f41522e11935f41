// Package lyriontest provides a Lyrion JSON-RPC server with an in-memory queue
// for use in tests.
package lyriontest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/ironsmile/albumchunks/src/queue"
)

// Server answers the playlist commands used by lyrion.Client for one player.
// Moves are applied on its queue the way Lyrion does them.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	player   string
	tracks   []queue.TrackMeta
	username string
	password string
	failWith int
	moves    int
	requests int
	errors   []string
}

// NewServer starts a server for `player` with the queue `tracks`. The Index of
// every track is ignored. Close it when done.
func NewServer(player string, tracks []queue.TrackMeta) *Server {
	s := &Server{
		player: player,
		tracks: slices.Clone(tracks),
	}

	router := mux.NewRouter()
	router.HandleFunc("/jsonrpc.js", s.handleRPC).Methods(http.MethodPost)
	s.Server = httptest.NewServer(router)

	return s
}

// RequireAuth makes the server reject requests without these credentials.
func (s *Server) RequireAuth(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.password = password
}

// FailWith makes every following request return HTTP `status`. Zero restores
// normal operation.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Tracks returns the current queue with indexes set.
func (s *Server) Tracks() []queue.TrackMeta {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracks := slices.Clone(s.tracks)
	for i := range tracks {
		tracks[i].Index = i
	}
	return tracks
}

// Moves returns the number of successful move commands.
func (s *Server) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

// Requests returns the number of handled requests.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Errors returns the problems the server found with received requests.
func (s *Server) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.errors)
}

type rpcRequest struct {
	ID     int               `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

func (s *Server) handleRPC(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	if s.failWith != 0 {
		w.WriteHeader(s.failWith)
		return
	}

	if s.username != "" {
		user, pass, ok := req.BasicAuth()
		if !ok || user != s.username || pass != s.password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}

	var (
		rpc     rpcRequest
		player  string
		command []string
	)
	if err := json.NewDecoder(req.Body).Decode(&rpc); err != nil {
		s.fail(w, http.StatusBadRequest, "decoding request: %s", err)
		return
	}
	if rpc.Method != "slim.request" || len(rpc.Params) != 2 {
		s.fail(w, http.StatusBadRequest, "unexpected request: %+v", rpc)
		return
	}
	if err := json.Unmarshal(rpc.Params[0], &player); err != nil || player != s.player {
		s.fail(w, http.StatusNotFound, "unknown player %s", rpc.Params[0])
		return
	}
	if err := json.Unmarshal(rpc.Params[1], &command); err != nil {
		s.fail(w, http.StatusBadRequest, "bad command %s", rpc.Params[1])
		return
	}

	result, err := s.execute(command)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "%s", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":     rpc.ID,
		"method": rpc.Method,
		"params": rpc.Params,
		"result": result,
	})
}

func (s *Server) execute(command []string) (map[string]any, error) {
	if len(command) < 2 || command[0] != "playlist" {
		return nil, fmt.Errorf("unsupported command %v", command)
	}

	switch command[1] {
	case "tracks":
		return map[string]any{"_tracks": len(s.tracks)}, nil
	case "album", "artist", "title":
		if len(command) != 4 {
			return nil, fmt.Errorf("bad query %v", command)
		}
		pos, err := s.index(command[2])
		if err != nil {
			return nil, err
		}
		track := s.tracks[pos]
		value := map[string]string{
			"album":  track.Album,
			"artist": track.Artist,
			"title":  track.Title,
		}[command[1]]
		if value == "" {
			return map[string]any{}, nil
		}
		return map[string]any{"_" + command[1]: value}, nil
	case "move":
		if len(command) != 4 {
			return nil, fmt.Errorf("bad move %v", command)
		}
		from, err := s.index(command[2])
		if err != nil {
			return nil, err
		}
		to, err := s.index(command[3])
		if err != nil {
			return nil, err
		}
		track := s.tracks[from]
		s.tracks = slices.Delete(s.tracks, from, from+1)
		s.tracks = slices.Insert(s.tracks, to, track)
		s.moves++
		return map[string]any{}, nil
	}

	return nil, fmt.Errorf("unsupported command %v", command)
}

func (s *Server) index(val string) (int, error) {
	pos, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %w", val, err)
	}
	if pos < 0 || pos >= len(s.tracks) {
		return 0, fmt.Errorf("index %d out of range", pos)
	}
	return pos, nil
}

func (s *Server) fail(w http.ResponseWriter, status int, format string, args ...any) {
	s.errors = append(s.errors, fmt.Sprintf(format, args...))
	w.WriteHeader(status)
}
