package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgpai22/srtkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Create a sample configuration file",
	Annotations: map[string]string{skipConfigLoad: "true"},
	Args:        cobra.NoArgs,
	RunE:        runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringP("path", "p", "", "Destination for the configuration file")
	configInitCmd.Flags().Bool("overwrite", false, "Overwrite existing configuration if present")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	targetPath, _ := cmd.Flags().GetString("path")
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	target := strings.TrimSpace(targetPath)
	if target == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("determine default config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		target = expanded
	}

	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("check config path: %w", err)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := cfg.Encode()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
