// Command contactform renders, drives and inspects the #contacto form outside
// the browser.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
