package main

import "github.com/bluestero/ythandle/cmd"

func main() {
	cmd.Execute()
}
