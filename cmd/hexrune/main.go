package main

import "github.com/ThatOtherAndrew/Hexrune/cmd"

func main() {
	cmd.Execute()
}
