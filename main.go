package main

import "yournews/cmd"

func main() {
	cmd.Execute()
}
