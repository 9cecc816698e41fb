package main

import "github.com/marshallshelly/northwind-samples/cmd/northwind/commands"

func main() {
	commands.Execute()
}
