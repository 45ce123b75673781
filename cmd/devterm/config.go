// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devifyx/devterm/internal/config"
	"github.com/devifyx/devterm/internal/issue"
)

// newConfigCommand creates the `devterm config` command tree.
func newConfigCommand(root *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage devterm configuration",
		Long: `Manage devterm configuration.

Configuration is stored in:
  - Linux: ~/.config/devterm/config.cue
  - macOS: ~/Library/Application Support/devterm/config.cue
  - Windows: %APPDATA%\devterm\config.cue

Every key can also be set from the environment, e.g. DEVTERM_UI_TYPING_DELAY=0s.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, root)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath(config.LoadOptions{ConfigFilePath: root.cfgFile})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.OutOrStdout(), root.cfgFile)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, root *rootOptions) error {
	out := cmd.OutOrStdout()

	cfg, err := root.loadConfig(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, root.verbose))
		cfg = config.DefaultConfig()
	}

	path, pathErr := config.FilePath(config.LoadOptions{ConfigFilePath: root.cfgFile})

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)
	switch {
	case pathErr == nil && err == nil && fileExists(path):
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), path)
	default:
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	value := func(v any) string { return SuccessStyle.Render(fmt.Sprint(v)) }

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("session"))
	fmt.Fprintf(out, "  username: %s\n", value(cfg.Session.Username))
	fmt.Fprintf(out, "  hostname: %s\n", value(cfg.Session.Hostname))
	fmt.Fprintf(out, "  home: %s\n", value(cfg.Session.Home))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("ui"))
	fmt.Fprintf(out, "  typing_delay: %s\n", value(cfg.UI.TypingDelay))
	fmt.Fprintf(out, "  welcome: %s\n", value(cfg.UI.Welcome))
	fmt.Fprintf(out, "  color_scheme: %s\n", value(cfg.UI.ColorScheme))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("ssh"))
	fmt.Fprintf(out, "  host: %s\n", value(cfg.SSH.Host))
	fmt.Fprintf(out, "  port: %s\n", value(cfg.SSH.Port))
	fmt.Fprintf(out, "  host_key_path: %s\n", value(cfg.SSH.HostKeyPath))
	if cfg.SSH.MetricsAddr == "" {
		fmt.Fprintf(out, "  metrics_addr: %s\n", SubtitleStyle.Render("(disabled)"))
	} else {
		fmt.Fprintf(out, "  metrics_addr: %s\n", value(cfg.SSH.MetricsAddr))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("log"))
	fmt.Fprintf(out, "  level: %s\n", value(cfg.Log.Level))
	if cfg.Log.File == "" {
		fmt.Fprintf(out, "  file: %s\n", SubtitleStyle.Render("(none)"))
	} else {
		fmt.Fprintf(out, "  file: %s\n", value(cfg.Log.File))
	}

	return nil
}

func initConfig(out io.Writer, cfgFile string) error {
	path, err := config.FilePath(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	if fileExists(path) {
		fmt.Fprintf(out, "%s Config file already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}

	if cfgFile == "" {
		err = config.EnsureConfigDir()
	} else {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return issue.WrapWithOperation(err, "create config directory")
	}

	if err := os.WriteFile(path, []byte(config.GenerateCUE(config.DefaultConfig())), 0o644); err != nil {
		return issue.WrapWithOperation(err, "write config file")
	}

	fmt.Fprintf(out, "%s Created %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
