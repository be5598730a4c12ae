package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/eachlabs/parley/internal/config"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage parley configuration.

Subcommands:
  get [key]              Show configuration value(s)
  set <key> <value>      Set a configuration value
  edit                   Open config in $EDITOR
  path                   Show config file path
  init                   Write the default configuration`,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show configuration",
	Long: `Show configuration values.

Examples:
  parley config get                    # Show all config
  parley config get history.prune_length
  parley config get channels`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			// Show all config
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			enc := toml.NewEncoder(out)
			return enc.Encode(cfg)
		}

		// Get specific key
		key := args[0]
		value := getConfigValue(cfg, key)
		if value == nil {
			return fmt.Errorf("key not found: %s", key)
		}

		if jsonOut {
			enc := json.NewEncoder(out)
			return enc.Encode(value)
		}

		fmt.Fprintf(out, "%v\n", value)
		return nil
	},
}

func getConfigValue(cfg *config.Config, key string) any {
	parts := strings.Split(key, ".")

	switch parts[0] {
	case "window":
		if len(parts) == 1 {
			return cfg.Window
		}
		switch parts[1] {
		case "width":
			return cfg.Window.Width
		case "height":
			return cfg.Window.Height
		case "max_chat_input":
			return cfg.Window.MaxChatInput
		case "max_menu_input":
			return cfg.Window.MaxMenuInput
		case "default_channel":
			return cfg.Window.DefaultChannel
		case "alt_screen":
			return cfg.Window.AltScreen
		}

	case "history":
		if len(parts) == 1 {
			return cfg.History
		}
		switch parts[1] {
		case "prune_enabled":
			return cfg.History.PruneEnabled
		case "prune_length":
			return cfg.History.PruneLength
		}

	case "channels":
		if len(parts) == 1 {
			names := make([]string, len(cfg.Channels))
			for i, ch := range cfg.Channels {
				names[i] = ch.Name
			}
			return names
		}
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 0 || i >= len(cfg.Channels) {
			return nil
		}
		if len(parts) == 2 {
			return cfg.Channels[i]
		}
		switch parts[2] {
		case "name":
			return cfg.Channels[i].Name
		case "color":
			return cfg.Channels[i].Color.HexAlpha()
		}

	case "seed":
		if len(parts) == 1 {
			return len(cfg.Seed)
		}

	case "logging":
		if len(parts) == 1 {
			return cfg.Logging
		}
		switch parts[1] {
		case "level":
			return cfg.Logging.Level
		case "file":
			return cfg.LogFile()
		}
	}

	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Examples:
  parley config set history.prune_enabled true
  parley config set history.prune_length 25
  parley config set channels.1.name Skirmish
  parley config set channels.1.color "#b3331a"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := args[1]

		cfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}

		if err := setConfigValue(cfg, key, value); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := cfg.Save(cfgFile); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

func setConfigValue(cfg *config.Config, key, value string) error {
	parts := strings.Split(key, ".")

	setInt := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}
	setBool := func(dst *bool) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}

	switch parts[0] {
	case "window":
		if len(parts) != 2 {
			return fmt.Errorf("invalid key: %s", key)
		}
		switch parts[1] {
		case "width":
			return setInt(&cfg.Window.Width)
		case "height":
			return setInt(&cfg.Window.Height)
		case "max_chat_input":
			return setInt(&cfg.Window.MaxChatInput)
		case "max_menu_input":
			return setInt(&cfg.Window.MaxMenuInput)
		case "default_channel":
			return setInt(&cfg.Window.DefaultChannel)
		case "alt_screen":
			return setBool(&cfg.Window.AltScreen)
		default:
			return fmt.Errorf("unknown field: %s", parts[1])
		}

	case "history":
		if len(parts) != 2 {
			return fmt.Errorf("invalid key: %s", key)
		}
		switch parts[1] {
		case "prune_enabled":
			return setBool(&cfg.History.PruneEnabled)
		case "prune_length":
			return setInt(&cfg.History.PruneLength)
		default:
			return fmt.Errorf("unknown field: %s", parts[1])
		}

	case "channels":
		if len(parts) != 3 {
			return fmt.Errorf("invalid key: %s (use channels.<id>.<field>)", key)
		}
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 0 || i >= len(cfg.Channels) {
			return fmt.Errorf("unknown channel: %s", parts[1])
		}
		switch parts[2] {
		case "name":
			cfg.Channels[i].Name = value
		case "color":
			return cfg.Channels[i].Color.UnmarshalText([]byte(value))
		default:
			return fmt.Errorf("unknown field: %s", parts[2])
		}

	case "logging":
		if len(parts) != 2 {
			return fmt.Errorf("invalid key: %s", key)
		}
		switch parts[1] {
		case "level":
			cfg.Logging.Level = value
		case "file":
			cfg.Logging.File = value
		default:
			return fmt.Errorf("unknown field: %s", parts[1])
		}

	default:
		return fmt.Errorf("unknown section: %s", parts[0])
	}

	return nil
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config in editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vim"
		}

		configPath := configPathInUse()

		// Ensure config exists
		cfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}
		if err := cfg.Save(configPath); err != nil {
			return err
		}

		c := exec.Command(editor, configPath)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPathInUse())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPathInUse()

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := config.Default().Save(path); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
