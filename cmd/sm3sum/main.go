package main

import (
	"os"

	"github.com/zeebo/sm3/cmd/sm3sum/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
