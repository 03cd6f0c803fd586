// Command signalprint prints the host device's fingerprint, identifier, or
// collected signals, computed entirely locally.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	sdk "github.com/signalprint/sdk"
	"github.com/signalprint/sdk/fingerprint"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var hashAlgorithm string
	var verbose bool

	root := &cobra.Command{
		Use:           "signalprint",
		Short:         "Locally computed device fingerprints",
		Long:          "signalprint reads device signals, builds the signal tree, and prints fingerprints. Nothing leaves the machine.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to signalprint.yaml")
	root.PersistentFlags().StringVar(&hashAlgorithm, "hash", "", "Hash algorithm (sha1, sha256, sha512)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	newFingerprinter := func() (sdk.Fingerprinter, error) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		opts := []sdk.Option{sdk.WithLogger(logger)}
		if configPath != "" {
			opts = append(opts, sdk.WithConfig(configPath))
		}
		if hashAlgorithm != "" {
			hasher, err := fingerprint.NewHasher(hashAlgorithm)
			if err != nil {
				return nil, err
			}
			opts = append(opts, sdk.WithHasher(hasher))
		}
		return sdk.New(opts...)
	}

	root.AddCommand(&cobra.Command{
		Use:   "id",
		Short: "Print the device identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := newFingerprinter()
			if err != nil {
				return err
			}
			id, err := fp.DeviceID(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "fingerprint",
		Short: "Print the device fingerprint (root digest)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := newFingerprinter()
			if err != nil {
				return err
			}
			digest, err := fp.Fingerprint(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "tree",
		Short: "Print the full fingerprint tree as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := newFingerprinter()
			if err != nil {
				return err
			}
			tree, err := fp.FingerprintTree(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tree)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "signals",
		Short: "Print the flattened signal map as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := newFingerprinter()
			if err != nil {
				return err
			}
			rendered, err := fp.SignalsJSON(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	})

	return root
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
