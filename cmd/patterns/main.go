// Command patterns runs the design pattern demos in catalogue order.
//
// Usage:
//
//	patterns run [slug...]        run the selected demos (default: all)
//	patterns list [-o text|yaml]  list available demos
//
// Configuration comes from --config (YAML), PATTERNS_* environment
// variables and flags, in increasing order of precedence.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
