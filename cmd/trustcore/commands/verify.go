package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustcore/ed25519"
	"trustcore/encode"
)

func verifyCmd() *cobra.Command {
	var pub, sig string
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a detached Ed25519 signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := parseFixed("pub", pub, ed25519.PublicKeySize)
			if err != nil {
				return err
			}
			pk, err := ed25519.ParsePublicKey(pubBytes)
			if err != nil {
				return err
			}

			sigBytes, err := encode.ParseBase64URL(sig)
			if err != nil {
				return fmt.Errorf("--sig: %w", err)
			}
			signature, err := ed25519.ParseSignature(sigBytes)
			if err != nil {
				return err
			}

			msg, err := readInput(args)
			if err != nil {
				return err
			}
			if err := pk.Verify(msg, signature); err != nil {
				return err
			}
			fmt.Println("OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&pub, "pub", "", "base64url Ed25519 public key (32 bytes)")
	cmd.Flags().StringVar(&sig, "sig", "", "base64url signature (64 bytes)")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
