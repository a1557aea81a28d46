package main

import "partdex/cmd/partdex-cli/cmd"

func main() {
	cmd.Execute()
}
