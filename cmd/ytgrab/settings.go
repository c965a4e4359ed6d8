package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/ytgrab/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change persisted settings",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and persist it",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in defaults",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd, settingsGetCmd, settingsSetCmd, settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, args []string) error {
	settings := config.Load()

	keys := settings.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%-28s %v\n", key, settings.Get(key))
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	settings := config.Load()
	value := settings.Get(args[0])
	if value == nil {
		return fmt.Errorf("unknown setting: %s", args[0])
	}
	fmt.Printf("%v\n", value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	settings := config.Load()
	settings.Set(key, parseSettingValue(raw))
	if err := settings.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Printf("%s = %v\n", key, settings.Get(key))
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	settings := config.Load()
	if err := settings.Reset(); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	fmt.Println("Settings restored to defaults.")
	return nil
}

// parseSettingValue keeps booleans and integers typed in the JSON document.
func parseSettingValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return b
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
