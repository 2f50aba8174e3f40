package main

import "github.com/rustyeddy/harvestsim/cli"

func main() {
	cli.Execute()
}
