package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotoml",
	Short: "gotoml is a command-line tool for inspecting and converting TOML documents.",
	Long:  "gotoml is a command-line tool for inspecting and converting TOML documents. It can parse a TOML file, look up a dotted key path within it, and re-render the result as TOML or JSON.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotoml",
	Long:  `All software has versions. This is gotoml's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gotoml v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tomlCmd)
}
