package main

import "github.com/rfranks/geneboard/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
