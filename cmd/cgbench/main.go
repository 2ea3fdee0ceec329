package main

import "github.com/ckibe-opt/compiledgraph/cmd/cgbench/commands"

func main() {
	commands.Execute()
}
