package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	attestations "github.com/AnomalyFi/seq-wasm/modules/light-clients/10-attestations"
)

const (
	flagValidators     = "validators"
	flagNonce          = "nonce"
	flagPowerThreshold = "power-threshold"
)

func newValsetCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valset",
		Short: "Validator set commitment subcommands",
	}

	cmd.PersistentFlags().StringSlice(flagValidators, nil, "validators as <address>:<power>, in set order")

	cmd.AddCommand(
		newValsetHashCmd(v),
		newValsetCheckpointCmd(v),
	)
	return cmd
}

func newValsetHashCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "hash",
		Short:   "Print the hash of a validator set",
		Example: fmt.Sprintf("%s valset hash --validators 0x...:10,0x...:20", appName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals, err := parseValidators(v.GetStringSlice(flagValidators))
			if err != nil {
				return err
			}
			hash, err := attestations.ComputeValidatorSetHash(vals)
			if err != nil {
				return err
			}

			cmd.Println(hexutil.Encode(hash[:]))
			return nil
		},
	}
}

func newValsetCheckpointCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkpoint",
		Short:   "Print the domain separated checkpoint of a validator set",
		Example: fmt.Sprintf("%s valset checkpoint --nonce 1 --power-threshold 2863311530 --validators 0x...:10", appName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}

			vals, err := parseValidators(v.GetStringSlice(flagValidators))
			if err != nil {
				return err
			}
			nonce, err := parseUint256(v.GetString(flagNonce))
			if err != nil {
				return err
			}
			powerThreshold, err := parseUint256(v.GetString(flagPowerThreshold))
			if err != nil {
				return err
			}

			hash, err := attestations.ComputeValidatorSetHash(vals)
			if err != nil {
				return err
			}
			checkpoint := attestations.DomainSeparateValidatorSetHash(nonce, powerThreshold, hash)

			logger.Debug("computed validator set checkpoint", "validators", len(vals), "valset-hash", hexutil.Encode(hash[:]))
			cmd.Println(hexutil.Encode(checkpoint[:]))
			return nil
		},
	}

	cmd.Flags().String(flagNonce, "0", "validator set nonce")
	cmd.Flags().String(flagPowerThreshold, "0", "power threshold of the validator set")
	return cmd
}
