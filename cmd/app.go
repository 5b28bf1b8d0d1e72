// Package cmd implements the CLI application to follow a portfolio served by the portfolio API.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/folio"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Commands lists the folio subcommands, by group.
var Commands = []struct {
	Group    string
	Commands []subcommands.Command
}{
	{"views", []subcommands.Command{
		&dashboardCmd{},
		&summaryCmd{},
		&performanceCmd{},
		&holdingsCmd{},
		&allocationCmd{},
		&positionsCmd{},
	}},
	{"transactions", []subcommands.Command{
		&txCmd{},
		&buyCmd{},
		&sellCmd{},
		&editCmd{},
		&deleteCmd{},
	}},
	{"watchlist", []subcommands.Command{
		&watchCmd{},
	}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Commands {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", defaultConfigFile(), "Path to the YAML config file")
	apiURL     = flag.String("api-url", "", "Base URL of the portfolio API. Overrides the config.")
	currency   = flag.String("currency", "", "Currency used to display amounts. Overrides the config.")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error). Overrides the config.")
	raw        = flag.Bool("raw", false, "Print raw markdown instead of rendering it.")
)

// defaultConfigFile returns $FOLIO_CONFIG, or the default config location.
func defaultConfigFile() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	return folio.DefaultConfigFile()
}

// stdout is where the commands print, it is replaced in tests.
var stdout io.Writer = os.Stdout

// loadConfig loads the config and applies the global flags on top of it.
func loadConfig() (folio.Config, error) {
	c, err := folio.LoadConfig(*configFile)
	if err != nil {
		return c, err
	}
	if *apiURL != "" {
		c.APIURL = *apiURL
	}
	if *currency != "" {
		c.Currency = *currency
	}
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	c.ApplyLogging()
	return c, nil
}

// connect loads the config and returns an API client for it.
func connect() (folio.Config, *folio.Client, subcommands.ExitStatus) {
	c, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return c, nil, subcommands.ExitUsageError
	}
	client, err := c.Client()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		return c, nil, subcommands.ExitFailure
	}
	return c, client, subcommands.ExitSuccess
}

// withTimeout bounds a whole command to the config timeout, for commands making several requests.
func withTimeout(ctx context.Context, c folio.Config, requests int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.Timeout*time.Duration(requests))
}

// printMarkdown prints md rendered for the terminal, or raw if stdout is not a terminal.
func printMarkdown(md string) {
	if *raw || !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	width := 100
	if f, ok := stdout.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		log.WithError(err).Debug("cannot create markdown renderer")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.WithError(err).Debug("cannot render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
