package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustcore/ed25519"
	"trustcore/encode"
	"trustcore/internal/memzero"
)

func signCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a message with an Ed25519 seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseFixed("key", key, ed25519.SeedSize)
			if err != nil {
				return err
			}
			kp, err := ed25519.FromSeed(seed)
			memzero.Zero(seed)
			if err != nil {
				return err
			}
			defer kp.Zeroize()

			msg, err := readInput(args)
			if err != nil {
				return err
			}
			sig, err := kp.Sign(msg)
			if err != nil {
				return err
			}
			fmt.Println(encode.Base64URL(sig.Slice()))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base64url Ed25519 seed (32 bytes)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
