package main

import "github.com/plantpulse/downtimer/cmd"

func main() {
	cmd.Execute()
}
