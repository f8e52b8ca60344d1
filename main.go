package main

import "rowanc/cmd"

func main() {
	cmd.Execute()
}
