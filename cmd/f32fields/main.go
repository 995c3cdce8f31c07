// Command f32fields prints every float in a binary dump with its sign, exponent and
// mantissa bits.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/floatbits/internal/cli"
)

func main() {
	cfg, err := cli.ConfigFromEnv(cli.ModeFields)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}

	os.Exit(cli.Run(cfg))
}
