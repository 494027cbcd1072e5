package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AnomalyFi/seq-wasm/internal/validate"
	"github.com/AnomalyFi/seq-wasm/modules/core/precompiles"
)

const (
	flagVKeyHash     = "vkey-hash"
	flagVKeyFile     = "vkey-file"
	flagProofFile    = "proof-file"
	flagPublicValues = "public-values"
)

func newPrecompileCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precompile",
		Short: "Proof verification precompile subcommands",
	}

	cmd.AddCommand(newPrecompileVerifyCmd(v))
	return cmd
}

func newPrecompileVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an SP1 PLONK proof over BN254",
		Long: `Verify an SP1 PLONK proof over BN254.

The verifying key file holds a serialized gnark verifying key and the proof
file the hex encoding of a serialized gnark proof.`,
		Example: fmt.Sprintf("%s precompile verify --vkey-hash 0x00... --vkey-file plonk_vk.bin --proof-file proof.hex --public-values 0x...", appName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}

			vkeyHash := []byte(v.GetString(flagVKeyHash))
			vkey, err := os.ReadFile(v.GetString(flagVKeyFile))
			if err != nil {
				return fmt.Errorf("failed to read verifying key: %w", err)
			}
			if err := validate.ProgramVKey(vkeyHash, vkey); err != nil {
				return err
			}

			proof, err := os.ReadFile(v.GetString(flagProofFile))
			if err != nil {
				return fmt.Errorf("failed to read proof: %w", err)
			}
			publicValues, err := hexutil.Decode(v.GetString(flagPublicValues))
			if err != nil {
				return fmt.Errorf("invalid public values: %w", err)
			}

			if err := precompiles.NewPlonkVerifier().VerifyProof(vkeyHash, publicValues, bytes.TrimSpace(proof), vkey); err != nil {
				logger.Debug("proof rejected", "err", err)
				cmd.Println(false)
				return nil
			}
			cmd.Println(true)
			return nil
		},
	}

	cmd.Flags().String(flagVKeyHash, "", "0x-prefixed program verifying key hash")
	cmd.Flags().String(flagVKeyFile, "", "path to the serialized verifying key")
	cmd.Flags().String(flagProofFile, "", "path to the hex encoded proof")
	cmd.Flags().String(flagPublicValues, "0x", "hex encoded public values")
	return cmd
}
