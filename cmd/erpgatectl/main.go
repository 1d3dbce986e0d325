// Command erpgatectl administers the gateway's credential store.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(runWithApp).Execute(); err != nil {
		os.Exit(1)
	}
}
