package main

import "game-datastore/cmd"

func main() {
	cmd.Execute()
}
