package cmd

import (
	"flag"

	"github.com/etnz/folio"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// windowNames predicts the -r flag values.
func windowNames() predict.Set {
	names := make(predict.Set, len(folio.Windows))
	for i, w := range folio.Windows {
		names[i] = w.String()
	}
	return names
}

// completionCommand describes the folio command line for shell completion.
func completionCommand() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, g := range Commands {
		for _, c := range g.Commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			flags := make(map[string]complete.Predictor)
			fs.VisitAll(func(f *flag.Flag) {
				flags[f.Name] = predict.Nothing
			})
			if _, ok := flags["r"]; ok {
				flags["r"] = windowNames()
			}
			sub[c.Name()] = &complete.Command{Flags: flags}
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.yaml"),
			"api-url":   predict.Something,
			"currency":  predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
	}
}

// Completion runs the shell completion when the program is invoked by the shell
// to complete a command line. It does nothing otherwise.
func Completion(name string) {
	completionCommand().Complete(name)
}
