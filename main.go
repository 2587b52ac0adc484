package main

import "github.com/mouse-blink/monobump/cmd"

func main() {
	cmd.Execute()
}
