package main

import "github.com/notargets/levelgen/cmd"

func main() {
	cmd.Execute()
}
