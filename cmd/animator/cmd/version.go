package cmd

import "os"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the animator version and build time.",
		Usage: "animator version",
		Run: func(args []string) error {
			printVersion(os.Stdout)
			return nil
		},
	})
}
