package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trustcore"
	"trustcore/encode"
	"trustcore/hash"
)

func digestCmd() *cobra.Command {
	var alg string
	var asHex bool
	cmd := &cobra.Command{
		Use:   "digest [file]",
		Short: "Hash input with SHA-256 or BLAKE2b-256",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hasher trustcore.Hasher
			switch alg {
			case "sha256":
				hasher = hash.SHA256Hasher{}
			case "blake2b256":
				hasher = hash.BLAKE2b256Hasher{}
			default:
				return fmt.Errorf("unknown algorithm %q (sha256 or blake2b256)", alg)
			}

			data, err := readInput(args)
			if err != nil {
				return err
			}
			d := hasher.Hash(data)
			if asHex {
				fmt.Println(d.Hex())
			} else {
				fmt.Println(encode.Base64URL(d.Slice()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "sha256", "hash algorithm: sha256 or blake2b256")
	cmd.Flags().BoolVar(&asHex, "hex", false, "print the digest as hex instead of base64url")
	return cmd
}
