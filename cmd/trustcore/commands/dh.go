package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustcore/encode"
	"trustcore/internal/memzero"
	"trustcore/x25519"
)

func dhCmd() *cobra.Command {
	var key, peer string
	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Derive an X25519 shared secret",
		Long: "Derive the raw Diffie-Hellman output from your secret scalar and " +
			"a peer public key. Run it through a KDF before using it as a " +
			"symmetric key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := parseFixed("key", key, x25519.SeedSize)
			if err != nil {
				return err
			}
			kp, err := x25519.FromSeed(secret)
			memzero.Zero(secret)
			if err != nil {
				return err
			}
			defer kp.Zeroize()

			peerBytes, err := parseFixed("peer", peer, x25519.PublicKeySize)
			if err != nil {
				return err
			}
			pub, err := x25519.ParsePublicKey(peerBytes)
			if err != nil {
				return err
			}

			shared, err := kp.DiffieHellman(pub)
			if err != nil {
				return err
			}
			fmt.Println(encode.Base64URL(shared.Slice()))
			shared.Zeroize()
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base64url X25519 secret scalar (32 bytes)")
	cmd.Flags().StringVar(&peer, "peer", "", "base64url peer public key (32 bytes)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("peer")
	return cmd
}
