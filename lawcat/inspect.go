package main

import (
	"os"

	"github.com/olekukonko/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanpama/lawtable"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.xml>",
	Short: "Show the declared structure of each table",
	Long: `Inspect lists every declared cell of each table with its spans and borders,
and warns about border patterns that suggest a missing rowspan. With --yaml it
dumps the resolved grids instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("yaml", false, "dump resolved grids as YAML")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")
	mode, err := lawtable.ParseMode(viper.GetString("mode"))
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return errors.Newf("failed to open %s", args[0]).Wrap(err)
	}
	defer file.Close()

	return lawtable.Inspect(file, cmd.OutOrStdout(), mode, asYAML)
}
