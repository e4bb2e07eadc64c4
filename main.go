// SPDX-License-Identifier: MPL-2.0

package main

import cmd "caffbench/cmd/caffbench"

func main() {
	cmd.Execute()
}
