package main

import (
	"os"

	"github.com/hbenali/mybak/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
