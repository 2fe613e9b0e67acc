package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustcore/ed25519"
	"trustcore/encode"
	"trustcore/internal/memzero"
	"trustcore/x25519"
)

func keygenCmd() *cobra.Command {
	var alg string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print it as base64url",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch alg {
			case "ed25519":
				kp, err := ed25519.Generate()
				if err != nil {
					return err
				}
				seed := kp.Seed()
				fmt.Printf("secret: %s\n", encode.Base64URL(seed))
				fmt.Printf("public: %s\n", encode.Base64URL(kp.Public().Slice()))
				memzero.Zero(seed)
				kp.Zeroize()
			case "x25519":
				kp, err := x25519.Generate()
				if err != nil {
					return err
				}
				secret := kp.Secret()
				fmt.Printf("secret: %s\n", encode.Base64URL(secret))
				fmt.Printf("public: %s\n", encode.Base64URL(kp.Public().Slice()))
				memzero.Zero(secret)
				kp.Zeroize()
			default:
				return fmt.Errorf("unknown algorithm %q (ed25519 or x25519)", alg)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "ed25519", "key algorithm: ed25519 or x25519")
	return cmd
}
