package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trustcore"
	"trustcore/aead"
	"trustcore/encode"
	"trustcore/internal/memzero"
	"trustcore/random"
)

func sealCmd() *cobra.Command {
	var key, nonce, aad string
	cmd := &cobra.Command{
		Use:   "seal [file]",
		Short: "Encrypt with ChaCha20-Poly1305",
		Long: "Encrypt input under a 32-byte key. Without --nonce a random " +
			"12-byte nonce is drawn and printed to stderr; it is needed to open " +
			"the message. Never reuse a nonce under the same key.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBytes, err := parseFixed("key", key, trustcore.AEADKeySize)
			if err != nil {
				return err
			}
			var k [trustcore.AEADKeySize]byte
			copy(k[:], keyBytes)
			memzero.Zero(keyBytes)
			defer memzero.Zero(k[:])

			var n *[trustcore.AEADNonceSize]byte
			if nonce == "" {
				n, err = random.Nonce()
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "nonce: %s\n", encode.Base64URL(n[:]))
			} else {
				nonceBytes, err := parseFixed("nonce", nonce, trustcore.AEADNonceSize)
				if err != nil {
					return err
				}
				n = new([trustcore.AEADNonceSize]byte)
				copy(n[:], nonceBytes)
			}

			var aadBytes []byte
			if aad != "" {
				if aadBytes, err = encode.ParseBase64URL(aad); err != nil {
					return fmt.Errorf("--aad: %w", err)
				}
			}

			plaintext, err := readInput(args)
			if err != nil {
				return err
			}
			ct := aead.Encrypt(&k, n, aadBytes, plaintext)
			fmt.Println(encode.Base64URL(ct))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base64url key (32 bytes)")
	cmd.Flags().StringVar(&nonce, "nonce", "", "base64url nonce (12 bytes); random if omitted")
	cmd.Flags().StringVar(&aad, "aad", "", "base64url associated data (authenticated, not encrypted)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
