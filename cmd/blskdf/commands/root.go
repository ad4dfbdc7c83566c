package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"blskdf/internal/app"
)

// state shared by the subcommands of one root command.
type state struct {
	cfg    *app.Config
	appCtx *app.App

	seedHex    string
	mnemonic   string
	passphrase string
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with fresh configuration state.
func NewRootCmd() *cobra.Command {
	st := &state{cfg: app.NewDefaultConfig()}
	v := viper.New()

	root := &cobra.Command{
		Use:           "blskdf",
		Short:         "EIP-2333 BLS key derivation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, v, st.cfg); err != nil {
				return err
			}
			a, err := app.Wire(st.cfg)
			if err != nil {
				return err
			}
			st.appCtx = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", st.cfg.Home, "config dir (default ~/.blskdf)")
	pf.String("log", st.cfg.LogLevel, "debug, info, warn, error, fatal, panic")
	pf.Int("min-seed-length", st.cfg.MinSeedLength, "minimum seed length in bytes (0 only rejects empty seeds)")
	pf.Int("workers", st.cfg.Workers, "concurrent derivations for scan")
	pf.String("vectors", st.cfg.VectorsFile, "test-vector JSON file for verify (default: embedded EIP-2333 vectors)")

	root.AddCommand(
		masterCmd(st),
		childCmd(st),
		pathCmd(st),
		scanCmd(st),
		mnemonicSeedCmd(st),
		fingerprintCmd(st),
		verifyCmd(st),
	)
	return root
}

// loadConfig binds flags, reads [home]/blskdf.* if present, and fills cfg.
func loadConfig(cmd *cobra.Command, v *viper.Viper, cfg *app.Config) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	// First unmarshal picks up --home so the config file can be found.
	if err := v.Unmarshal(cfg); err != nil {
		return err
	}

	v.SetConfigName("blskdf")
	v.AddConfigPath(cfg.Home)
	var used string
	if err := v.ReadInConfig(); err == nil {
		used = v.ConfigFileUsed()
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		return err
	}

	// Second unmarshal layers the config file under explicit flags.
	if err := v.Unmarshal(cfg); err != nil {
		return err
	}
	if used != "" {
		cfg.Logger().Debugf("Using config file: %s", used)
	} else {
		cfg.Logger().Debugf("No config file found in: %s", cfg.Home)
	}
	return nil
}
