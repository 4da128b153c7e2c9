package main

import "github.com/HaiFongPan/panes-cli/cmd"

func main() {
	cmd.Execute()
}
