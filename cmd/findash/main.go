package main

import "findash/cmd/findash/commands"

func main() {
	commands.Execute()
}
