// The module is resposible for finding, parsing and merging the user
// configuration with the default. Configuration locations should be different
// depending on the host OS.
//
// Linux/BSD configurations should be in $HOME/.albumchunks/config.json
// Windows configurations should be in %APPDATA%/albumchunks/config.json
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"github.com/spf13/afero"

	"github.com/ironsmile/albumchunks/src/helpers"
	"github.com/ironsmile/albumchunks/src/queue"
)

// ConfigName is the name of the configuration file in the user path.
const ConfigName = "config.json"

// DefaultChunkSize is the number of entries of the same album placed in a row
// unless configured otherwise.
const DefaultChunkSize = 4

// The configuration type. Should contain representation for everything in config.json
type Config struct {
	// ServerURL is the base URL of the Lyrion server. Its JSON-RPC endpoint
	// is at /jsonrpc.js under it.
	ServerURL string `json:"server_url"`

	// PlayerID is the player whose queue is reordered.
	PlayerID string `json:"player_id"`

	// ChunkSize is the default number of entries of a group put in a row.
	ChunkSize int `json:"chunk_size"`

	// GroupBy is "album" or "artist".
	GroupBy string `json:"group_by"`

	// Timeout is the limit in seconds for a single request to the server.
	Timeout int `json:"timeout"`

	Username string `json:"username"`
	Password string `json:"password"`

	// SqliteDatabase is the file with local playlist copies. Relative paths
	// are relative to the user path.
	SqliteDatabase string `json:"sqlite_database"`
}

// Default returns the configuration used for everything missing from the user
// configuration file.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:9000",
		ChunkSize:      DefaultChunkSize,
		GroupBy:        string(queue.GroupByAlbum),
		Timeout:        10,
		SqliteDatabase: "albumchunks.db",
	}
}

// FindAndParse reads the configuration file in `userPath`, merging it on top of
// the defaults. When there is no such file it is created out of the defaults.
func (cfg *Config) FindAndParse(fs afero.Fs, userPath string) error {
	*cfg = Default()

	path := filepath.Join(userPath, ConfigName)
	if !helpers.FileExists(fs, path) {
		if err := writeDefault(fs, path); err != nil {
			return err
		}
	}

	return cfg.mergeFile(fs, path)
}

// ParseFile reads the configuration file at `path` and merges it on top of the
// defaults. The file must exist.
func (cfg *Config) ParseFile(fs afero.Fs, path string) error {
	*cfg = Default()
	return cfg.mergeFile(fs, path)
}

// Validate checks for values which cannot be used.
func (cfg *Config) Validate() error {
	if cfg.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive, got %d", cfg.ChunkSize)
	}

	if _, err := queue.ParseGroupBy(cfg.GroupBy); err != nil {
		return fmt.Errorf("group_by: %w", err)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative, got %d", cfg.Timeout)
	}

	return nil
}

// RequestTimeout returns the configured timeout for a single request.
func (cfg *Config) RequestTimeout() time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}

// DatabasePath returns the absolute path to the SQLite database.
func (cfg *Config) DatabasePath(userPath string) string {
	return helpers.AbsolutePath(cfg.SqliteDatabase, userPath)
}

func (cfg *Config) mergeFile(fs afero.Fs, path string) error {
	usrCfg := new(Config)
	if err := usrCfg.parse(fs, path); err != nil {
		return err
	}

	cfg.merge(usrCfg)
	return nil
}

// The config object parses an json file and populates its fields.
// The json file is specified by the filename argument.
func (cfg *Config) parse(fs afero.Fs, filename string) error {
	content, err := afero.ReadFile(fs, filename)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", filename, err)
	}

	return nil
}

// Merges an other config on top of itself. Only non-zero values will be merged.
func (cfg *Config) merge(merged *Config) {
	cfgVal := reflect.ValueOf(cfg).Elem()
	mergedVal := reflect.ValueOf(merged).Elem()

	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		if !mergedField.IsValid() || mergedField.IsZero() {
			continue
		}

		cfgField := cfgVal.Field(i)
		if !cfgField.CanSet() {
			continue
		}

		cfgField.Set(mergedField)
	}
}

// writeDefault creates the user configuration out of the defaults.
func writeDefault(fs afero.Fs, path string) error {
	content, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, append(content, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	return nil
}
