package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// fileConfig mirrors the on-disk references/config.json schema. The server
// URL historically appeared under two keys; "mcp_server_url" wins when both
// are present.
type fileConfig struct {
	MCPServerURL   string   `json:"mcp_server_url"`
	OneSearchURL   string   `json:"one_search_url"`
	SearchProvider string   `json:"search_provider"`
	SearchTimeout  Duration `json:"search_timeout"`
	SkillRootPath  string   `json:"skill_root_path"`
}

func (f *fileConfig) serverURL() string {
	if f.MCPServerURL != "" {
		return f.MCPServerURL
	}
	return f.OneSearchURL
}

// FilePath returns the config file location for the skill rooted at root.
func FilePath(root string) string {
	return filepath.Join(root, "references", "config.json")
}

// DefaultSkillRoot locates the skill root relative to the running executable:
// the parent of the directory holding the binary (the binary is expected to
// live in <skill root>/scripts). Returns an empty string if the executable
// path cannot be determined.
func DefaultSkillRoot() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(filepath.Dir(execPath))
}

// parseFile loads the config file at jsonFilePath. If the file declares a
// skill_root_path, the config is reloaded once from the redirected root;
// a redirect inside the redirected file is ignored (one hop, no loops).
func parseFile(jsonFilePath string) (*Config, error) {
	fileCfg, err := readFile(jsonFilePath)
	if err != nil {
		return nil, err
	}

	if fileCfg.SkillRootPath != "" {
		redirected, err := readFile(FilePath(fileCfg.SkillRootPath))
		if err != nil {
			return nil, fmt.Errorf("redirected config: %w", err)
		}
		fileCfg = redirected
	}

	return &Config{
		ServerURL:      fileCfg.serverURL(),
		SearchProvider: fileCfg.SearchProvider,
		SearchTimeout:  time.Duration(fileCfg.SearchTimeout),
	}, nil
}

func readFile(jsonFilePath string) (*fileConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &fileCfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from integer milliseconds (the historical config format, e.g. 30000) or
// duration strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value) * time.Millisecond)
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("unsupported duration value: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
