package main

import "github.com/mouse-blink/shlint/cmd"

func main() {
	cmd.Execute()
}
