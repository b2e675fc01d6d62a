package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tinyrsa/internal/app"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/logger"
)

var (
	cfg    app.Config
	appCtx *app.Wire
	cliLog *logger.Logger
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	cfg, appCtx, cliLog = app.Config{}, nil, nil

	root := &cobra.Command{
		Use:           "tinyrsa",
		Short:         "Toy byte-wise RSA over 64-bit integers",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// cobra checks required flags only after this hook runs.
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return err
			}
			if err := cmd.ValidateFlagGroups(); err != nil {
				return err
			}
			// Arguments are valid; later failures are not usage errors.
			cmd.SilenceUsage = true

			if cfg.LogJSON {
				cliLog = logger.NewJSONLogger("cli", stderr, cfg.Verbose)
			} else {
				cliLog = logger.NewLogger("cli", stderr, cfg.Verbose)
			}
			w, err := app.NewWire(cfg, nil, cliLog)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return fmt.Errorf("%w: no mode selected", domain.ErrInvalidArgument)
		},
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&cfg.Home, "home", "", "directory for generated key files (default .)")
	root.PersistentFlags().Uint64Var(&cfg.SieveLimit, "sieve-limit", 0, 
		fmt.Sprintf("largest candidate prime for keygen, at most %d (default 255)", app.MaxKeygenSieveLimit))
	root.PersistentFlags().BoolVar(&cfg.AllowSmallModulus, "allow-small-modulus", false, "accept moduli below 256")
	root.PersistentFlags().BoolVar(&cfg.LogJSON, "log-json", false, "write log entries as JSON")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd(), fingerprintCmd())

	err := root.Execute()
	if err != nil {
		if cliLog != nil {
			cliLog.Error().Err(err).Msg("command failed")
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
	}
	return err
}
