// The hmac-sign command signs webhook payloads with a shared secret, either printing
// the headers a sender must attach or sending the signed request directly. Run
// 'hmac-sign --help' for usage.
package main

import (
	"os"

	"github.com/golden-vcr/easy-hmac/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
