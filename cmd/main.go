package main

import "ai-diagnostics/commands"

func main() {
	commands.Execute()
}
