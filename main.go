package main

import "objectfs/cmd"

func main() {
	cmd.Execute()
}
