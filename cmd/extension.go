package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Environment passed to extensions.
const (
	EnvConfigFile = "FOLIO_CONFIG"
	EnvAPIURL     = "FOLIO_API_URL"
	EnvCurrency   = "FOLIO_CURRENCY"
	EnvLogLevel   = "FOLIO_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external folio-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "folio-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debugf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// global flags are passed as environment variables, the extension reads them like folio does.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvConfigFile+"="+*configFile)
	for name, value := range map[string]string{
		EnvAPIURL:   *apiURL,
		EnvCurrency: *currency,
		EnvLogLevel: *logLevel,
	} {
		if value != "" {
			cmd.Env = append(cmd.Env, name+"="+value)
		}
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
