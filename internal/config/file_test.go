package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSkillConfig writes body as references/config.json under root and
// returns the file path.
func writeSkillConfig(t *testing.T, root, body string) string {
	t.Helper()

	refDir := filepath.Join(root, "references")
	require.NoError(t, os.MkdirAll(refDir, 0o755))

	p := filepath.Join(refDir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_Success(t *testing.T) {
	// Arrange
	p := writeSkillConfig(t, t.TempDir(), `{
		"mcp_server_url": "http://localhost:8000",
		"search_provider": "local",
		"search_timeout": 30000
	}`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, "local", cfg.SearchProvider)
	assert.Equal(t, 30*time.Second, cfg.SearchTimeout)
}

func TestParseFile_OneSearchURLAlias(t *testing.T) {
	p := writeSkillConfig(t, t.TempDir(), `{"one_search_url": "http://alias:8000"}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "http://alias:8000", cfg.ServerURL)
}

func TestParseFile_MCPServerURLWinsOverAlias(t *testing.T) {
	p := writeSkillConfig(t, t.TempDir(), `{
		"mcp_server_url": "http://primary:8000",
		"one_search_url": "http://alias:8000"
	}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "http://primary:8000", cfg.ServerURL)
}

func TestParseFile_Malformed(t *testing.T) {
	p := writeSkillConfig(t, t.TempDir(), `{not json`)

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "references", "config.json"))
	require.Error(t, err)
}

// ── skill_root_path redirection ──────────────────────────────────────────────

func TestParseFile_Redirect(t *testing.T) {
	// Arrange: the primary config points at another skill root.
	redirectRoot := t.TempDir()
	writeSkillConfig(t, redirectRoot, `{"mcp_server_url": "http://redirected:9000"}`)

	primary := writeSkillConfig(t, t.TempDir(), `{
		"mcp_server_url": "http://primary:8000",
		"skill_root_path": `+jsonString(redirectRoot)+`
	}`)

	// Act
	cfg, err := parseFile(primary)

	// Assert: the redirected file replaces the primary entirely.
	require.NoError(t, err)
	assert.Equal(t, "http://redirected:9000", cfg.ServerURL)
}

func TestParseFile_RedirectIsOneHopOnly(t *testing.T) {
	// A redirect inside the redirected file must not be followed.
	thirdRoot := t.TempDir()
	writeSkillConfig(t, thirdRoot, `{"mcp_server_url": "http://third:9999"}`)

	secondRoot := t.TempDir()
	writeSkillConfig(t, secondRoot, `{
		"mcp_server_url": "http://second:9000",
		"skill_root_path": `+jsonString(thirdRoot)+`
	}`)

	primary := writeSkillConfig(t, t.TempDir(), `{
		"skill_root_path": `+jsonString(secondRoot)+`
	}`)

	cfg, err := parseFile(primary)

	require.NoError(t, err)
	assert.Equal(t, "http://second:9000", cfg.ServerURL)
}

func TestParseFile_RedirectTargetMissing(t *testing.T) {
	primary := writeSkillConfig(t, t.TempDir(), `{
		"mcp_server_url": "http://primary:8000",
		"skill_root_path": `+jsonString(filepath.Join(t.TempDir(), "nowhere"))+`
	}`)

	_, err := parseFile(primary)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirected config")
}

// jsonString quotes s as a JSON string literal (paths may contain backslashes).
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// ── Duration ─────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"integer milliseconds", `30000`, 30 * time.Second, false},
		{"fractional milliseconds", `1500`, 1500 * time.Millisecond, false},
		{"duration string", `"45s"`, 45 * time.Second, false},
		{"bad duration string", `"forever"`, 0, true},
		{"unsupported type", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, time.Duration(d))
			}
		})
	}
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "references", "config.json"), FilePath("root"))
}
