package main

import (
	"os"

	"github.com/fileman-cli/fileman/cmd/fileman/config"
	"github.com/fileman-cli/fileman/internal/cli"
	"github.com/fileman-cli/fileman/internal/fs"

	"github.com/spf13/cobra"
)

var (
	Debug    bool
	Username string

	rootCmd = &cobra.Command{
		Use:           "fileman [flags] --username=<name>",
		Short:         "An interactive command-line file manager",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       config.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			username := Username
			if username == "" {
				username = "Anonymous"
			}

			service, err := cli.NewService(cli.Config{
				FileSystem: fs.Local{},
				Stdin:      os.Stdin,
				Stdout:     os.Stdout,
				Stderr:     os.Stderr,
				Username:   username,
				Debug:      Debug,
			})
			if err != nil {
				return err
			}

			return service.Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.Flags().StringVar(&Username, "username", "Anonymous", "the display name used in the greeting and farewell")
	// A bare `--username` with no value falls back to the default instead
	// of failing flag parsing.
	rootCmd.Flags().Lookup("username").NoOptDefVal = "Anonymous"

	rootCmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
}
