package main

import "github.gatech.edu/CS2200/CS2200-Assembly-Server/cmd"

func main() {
	cmd.Execute()
}
