// Command f32bin prints every float in a binary dump alongside its 32-bit pattern.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/floatbits/internal/cli"
)

func main() {
	cfg, err := cli.ConfigFromEnv(cli.ModeBinary)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}

	os.Exit(cli.Run(cfg))
}
