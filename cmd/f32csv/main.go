// Command f32csv exports a binary float dump to an indexed CSV file.
//
// The CSV is written to data.csv in the working directory, or to the path in
// FLOATBITS_CSV. A .zst, .s2 or .lz4 extension compresses it. After the export the
// values are listed as "<index>: <value>"; setting FLOATBITS_SUMMARY appends a
// count/min/max/mean/stddev line.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/floatbits/internal/cli"
)

func main() {
	cfg, err := cli.ConfigFromEnv(cli.ModeCSV)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}

	os.Exit(cli.Run(cfg))
}
