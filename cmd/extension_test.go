package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// setGlobal sets a global flag for the duration of the test.
func setGlobal(t *testing.T, flag *string, value string) {
	t.Helper()
	old := *flag
	*flag = value
	t.Cleanup(func() { *flag = old })
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	tempDir := t.TempDir()
	script := `#!/bin/sh
echo "args=$*"
echo "` + EnvAPIURL + `=$` + EnvAPIURL + `"
echo "` + EnvCurrency + `=$` + EnvCurrency + `"
echo "` + EnvConfigFile + `=$` + EnvConfigFile + `"
exit 3
`
	if err := os.WriteFile(filepath.Join(tempDir, "folio-hello"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvCurrency, "")

	configPath := filepath.Join(tempDir, "config.yaml")
	setGlobal(t, configFile, configPath)
	setGlobal(t, apiURL, "http://api.example.com")
	setGlobal(t, currency, "XYZ")

	var out bytes.Buffer
	stdout = &out
	t.Cleanup(func() { stdout = os.Stdout })

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %v, want true, 3", found, code)
	}
	for _, want := range []string{
		"args=a b",
		EnvAPIURL + "=http://api.example.com",
		EnvCurrency + "=XYZ",
		EnvConfigFile + "=" + configPath,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, out.String())
		}
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension() found a missing extension")
	}
}
