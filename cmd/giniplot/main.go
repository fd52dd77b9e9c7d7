// Command giniplot charts the World Bank Gini index for one country and year range.
package main

import (
	"os"

	"giniplot/internal/config"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout)
	root.Version = config.GetVersion()

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
