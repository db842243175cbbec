// Command lawcat converts the tables of e-Gov law XML documents to Markdown,
// HTML or plain text.
package main

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanpama/lawtable"
)

var rootCmd = &cobra.Command{
	Use:   "lawcat",
	Short: "Render the tables of e-Gov law XML",
	Long: `lawcat extracts every table of an e-Gov law XML document and writes it as
Markdown, HTML or plain text. Merged cells are taken from rowspan and colspan
attributes and, in hybrid mode, inferred from cells whose borders are "none".

Settings are read from lawcat.yaml in the current directory or
~/.config/lawcat/, from LAWCAT_* environment variables, and from flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./lawcat.yaml or ~/.config/lawcat/lawcat.yaml)")
	flags.String("mode", "hybrid", "row span inference: strict or hybrid")
	flags.String("format", "markdown", "output format: markdown, html or text")
	flags.String("encoding", "utf-8", "output encoding, e.g. utf-8, shift_jis or euc-jp")
	flags.String("remark-label", "備考", "label written before table remarks")
	flags.Bool("debug", false, "write debug logs to stderr")

	for _, name := range []string{"mode", "format", "encoding", "remark-label", "debug"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lawcat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lawcat"))
		}
	}

	viper.SetEnvPrefix("LAWCAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		newLogger().Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// newLogger returns the CLI logger, enabled only with --debug.
func newLogger() *ll.Logger {
	logger := ll.New("lawcat").Handler(lh.NewTextHandler(colorable.NewColorableStderr()))
	if viper.GetBool("debug") {
		logger.Enable()
	} else {
		logger.Disable()
	}
	return logger
}

// options builds conversion options from the merged configuration.
func options() (lawtable.Options, error) {
	format, err := lawtable.ParseFormat(viper.GetString("format"))
	if err != nil {
		return lawtable.Options{}, err
	}
	mode, err := lawtable.ParseMode(viper.GetString("mode"))
	if err != nil {
		return lawtable.Options{}, err
	}
	return lawtable.Options{
		Format:      format,
		Mode:        mode,
		RemarkLabel: viper.GetString("remark-label"),
		Logger:      newLogger(),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "error: %v\n", err)
		os.Exit(1)
	}
}

// status prints a progress line to stderr.
func status(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(color.Error, format+"\n", args...)
}

func warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(color.Error, format+"\n", args...)
}
