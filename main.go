package main

import "github.com/mouse-blink/seek/cmd"

func main() {
	cmd.Execute()
}
