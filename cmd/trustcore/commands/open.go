package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trustcore"
	"trustcore/aead"
	"trustcore/encode"
	"trustcore/internal/memzero"
)

func openCmd() *cobra.Command {
	var key, nonce, aad string
	cmd := &cobra.Command{
		Use:   "open [file]",
		Short: "Decrypt and authenticate a sealed message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBytes, err := parseFixed("key", key, trustcore.AEADKeySize)
			if err != nil {
				return err
			}
			var k [trustcore.AEADKeySize]byte
			copy(k[:], keyBytes)
			memzero.Zero(keyBytes)
			defer memzero.Zero(k[:])

			nonceBytes, err := parseFixed("nonce", nonce, trustcore.AEADNonceSize)
			if err != nil {
				return err
			}
			var n [trustcore.AEADNonceSize]byte
			copy(n[:], nonceBytes)

			var aadBytes []byte
			if aad != "" {
				if aadBytes, err = encode.ParseBase64URL(aad); err != nil {
					return fmt.Errorf("--aad: %w", err)
				}
			}

			input, err := readInput(args)
			if err != nil {
				return err
			}
			ct, err := encode.ParseBase64URL(strings.TrimSpace(string(input)))
			if err != nil {
				return fmt.Errorf("ciphertext: %w", err)
			}
			plaintext, err := aead.Decrypt(&k, &n, aadBytes, ct)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(plaintext)
			return err
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base64url key (32 bytes)")
	cmd.Flags().StringVar(&nonce, "nonce", "", "base64url nonce (12 bytes)")
	cmd.Flags().StringVar(&aad, "aad", "", "base64url associated data used at seal time")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}
