package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kamal-hamza/folio/pkg/config"
	"github.com/kamal-hamza/folio/pkg/ui"

	"github.com/spf13/cobra"
)

var configPathOnly bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the folio configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appVault.ConfigPath

		if configPathOnly {
			fmt.Println(path)
			return nil
		}

		// Write defaults first so there is something to edit
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Println(ui.FormatSuccess("Created default config"))
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		c := exec.Command(GetPreferredEditor(), path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

func init() {
	configCmd.Flags().BoolVar(&configPathOnly, "path", false, "Print the config file path and exit")
}
