package main

import (
	"os"

	"github.com/spf13/cobra"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ono",
		Short: "A Java front-end toolkit",
	}

	rootCmd.AddCommand(newExampleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
