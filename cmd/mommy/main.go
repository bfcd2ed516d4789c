package main

import (
	"mommy/cmd/mommy/cmd"
)

func main() {
	cmd.Execute()
}
