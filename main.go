package main

import "token-bridge/cmd"

func main() {
	cmd.Execute()
}
