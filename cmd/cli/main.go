// Command uigen generates UI plans from the command line.
//
// Usage:
//
//	uigen plan     [--server URL] PROMPT...
//	uigen generate [--server URL] PROMPT...
//	uigen code     [FILE]
//	uigen render   [FILE]
//	uigen explain  LAYOUT
//
// Without --server, plan and generate call the model directly using the
// same environment variables as the API server. code and render read a plan
// from FILE, or stdin when FILE is "-" or omitted.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
