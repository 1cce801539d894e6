// Root command for the haven CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/itskylebrooks/haven/internal/paths"
	"github.com/itskylebrooks/haven/pkg/haven"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagUser      string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir     string
	configCurrentUser string
)

var rootCmd = &cobra.Command{
	Use:     "haven",
	Short:   "Haven is a local-first social feed",
	Version: haven.Version,
	Long: `Haven keeps a small social feed in an embedded database on this
machine: traces (posts tagged circle or signal), reflections (comments),
resonates (likes), mutual connections, and one-way subscriptions. There is
no server; everything lives under the data directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configCurrentUser = cfg.GetString(cfgKeyCurrentUser)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.haven-db)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "as", "", "act as this username (default: the currentUser setting)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(resonateCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(followersCmd)
	rootCmd.AddCommand(followingCmd)
	rootCmd.AddCommand(removeFollowerCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(settingCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(doctorCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > HAVEN_DATA_DIR env >
// default $(CWD)/.haven-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > HAVEN_CONFIG_DIR env >
// DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
