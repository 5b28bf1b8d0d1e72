package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// inTempDir runs the test from an empty directory, so no .env file is found.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, env := range configEnv {
		t.Setenv(env.name, "")
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := inTempDir(t)
	c, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	def := DefaultConfig()
	if c != def {
		t.Errorf("LoadConfig() = %+v, want %+v", c, def)
	}
	if c.APIURL != "http://localhost:8000" || c.Window != Quarter || c.Timeout != 10*time.Second {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "config.yaml")
	content := `api_url: https://api.example.com/
currency: eur
window: 1y
timeout: 3s
rate_limit: 2
burst: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.APIURL != "https://api.example.com" || c.Currency != "EUR" || c.Window != Year {
		t.Errorf("LoadConfig() = %+v", c)
	}
	if c.Timeout != 3*time.Second || c.RateLimit != 2 || c.Burst != 1 {
		t.Errorf("LoadConfig() = %+v", c)
	}

	t.Setenv("FOLIO_WINDOW", "7d")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	c, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Window != Week || c.LogLevel != "debug" {
		t.Errorf("environment should override the file, got %+v", c)
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	os.Unsetenv("FOLIO_CURRENCY")
	t.Cleanup(func() { os.Unsetenv("FOLIO_CURRENCY") })
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_CURRENCY=gbp\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP from .env", c.Currency)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"scheme":    "api_url: localhost:8000\n",
		"window":    "window: 2w\n",
		"log level": "log_level: loud\n",
		"timeout":   "timeout: -1s\n",
		"rate":      "rate_limit: 0\n",
		"yaml":      "api_url: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := inTempDir(t)
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig(%q) should fail", content)
			}
		})
	}
}

func TestConfig_Client(t *testing.T) {
	inTempDir(t)
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	cl, err := c.Client()
	if err != nil {
		t.Fatalf("Client() error = %v", err)
	}
	if cl.http.Timeout != c.Timeout {
		t.Errorf("client timeout = %v, want %v", cl.http.Timeout, c.Timeout)
	}
}
