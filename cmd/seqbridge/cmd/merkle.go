package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	commitmenttypes "github.com/AnomalyFi/seq-wasm/modules/core/23-commitment/types"
)

const (
	flagRoot      = "root"
	flagKey       = "key"
	flagNumLeaves = "num-leaves"
	flagSideNodes = "side-nodes"
)

func newMerkleCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merkle",
		Short: "Binary Merkle tree subcommands",
	}

	cmd.AddCommand(
		newMerkleVerifyCmd(v),
		newMerklePathLengthCmd(),
	)
	return cmd
}

func newMerkleVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify [leaf-data]",
		Short:   "Verify that hex encoded leaf data is included in a binary Merkle tree",
		Example: fmt.Sprintf("%s merkle verify 0x0102 --root 0x... --key 0 --num-leaves 2 --side-nodes 0x...", appName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}

			data, err := hexutil.Decode(args[0])
			if err != nil {
				return fmt.Errorf("invalid leaf data: %w", err)
			}
			root, err := parseBytes32(v.GetString(flagRoot))
			if err != nil {
				return err
			}

			var sideNodes [][32]byte
			for _, node := range v.GetStringSlice(flagSideNodes) {
				sideNode, err := parseBytes32(node)
				if err != nil {
					return err
				}
				sideNodes = append(sideNodes, sideNode)
			}

			proof := commitmenttypes.NewBinaryMerkleProof(sideNodes, v.GetUint64(flagKey), v.GetUint64(flagNumLeaves))
			if err := proof.VerifyMembership(root, data); err != nil {
				logger.Debug("membership proof rejected", "err", err)
				cmd.Println(false)
				return nil
			}
			cmd.Println(true)
			return nil
		},
	}

	cmd.Flags().String(flagRoot, "", "hex encoded tree root")
	cmd.Flags().Uint64(flagKey, 0, "index of the leaf")
	cmd.Flags().Uint64(flagNumLeaves, 0, "number of leaves in the tree")
	cmd.Flags().StringSlice(flagSideNodes, nil, "hex encoded side nodes, leaf to root")
	return cmd
}

func newMerklePathLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path-length [key] [num-leaves]",
		Short: "Print the number of side nodes on the path of a leaf",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseUint256(args[0])
			if err != nil {
				return err
			}
			numLeaves, err := parseUint256(args[1])
			if err != nil {
				return err
			}
			if !key.Lt(numLeaves) {
				return fmt.Errorf("key %s out of range for %s leaves", key.Dec(), numLeaves.Dec())
			}

			cmd.Println(commitmenttypes.PathLengthFromKey(key, numLeaves))
			return nil
		},
	}
}

