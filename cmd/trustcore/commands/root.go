package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trustcore/encode"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "trustcore",
		Short:         "Foundation-layer cryptographic primitives",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		keygenCmd(),
		signCmd(),
		verifyCmd(),
		digestCmd(),
		sealCmd(),
		openCmd(),
		dhCmd(),
		encodeCmd(),
		decodeCmd(),
	)
	return root.Execute()
}

// readInput returns the message bytes: the named file, or stdin when the
// argument is absent or "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// parseFixed decodes a base64url flag value into exactly n bytes.
func parseFixed(flag, value string, n int) ([]byte, error) {
	b, err := encode.ParseBase64URL(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("--%s: want %d bytes, got %d", flag, n, len(b))
	}
	return b, nil
}
