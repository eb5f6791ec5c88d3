package main

import "github.com/pders01/notes/cmd"

func main() {
	cmd.Execute()
}
