// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/Emasoft/no-install-linters-expert/cmd/nolin"

func main() {
	cmd.Execute()
}
