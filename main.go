package main

import (
	"github.com/Theomat/rusync/cmd"
	"github.com/Theomat/rusync/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
