// Command jitter prints randomized point sets and colors for line-art
// drawings, either as SVG points attributes or as JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/linework/jitter"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	seed    int64
	verbose bool
	format  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "jitter",
		Short:        "Randomized points and colors for line-art drawing",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "seed for a reproducible run, 0 uses the global source")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log generated points to stderr")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "points", "output format: points or json")

	cmd.AddCommand(
		newBoxCommand(opts),
		newPolygonCommand(opts),
		newOffsetCommand(opts),
		newColorCommand(opts),
		newHexCommand(opts),
	)
	return cmd
}

func (o *rootOptions) generator(cmd *cobra.Command) (*jitter.Generator, error) {
	options := []jitter.Option{jitter.Logger(o.logger(cmd.ErrOrStderr()))}
	if o.seed != 0 {
		options = append(options, jitter.LocalRandomNumberGenerator(o.seed))
	}
	return jitter.New(options...)
}

func (o *rootOptions) logger(w io.Writer) zerolog.Logger {
	if !o.verbose {
		return zerolog.Nop()
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// write prints v as JSON, or text in the points format.
func (o *rootOptions) write(cmd *cobra.Command, v any, text string) error {
	switch o.format {
	case "json":
		return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
	case "points":
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	default:
		return fmt.Errorf("unknown format %q, expected points or json", o.format)
	}
}
