package main

import "github.com/avolkov/primdb/cmd"

func main() {
	cmd.Execute()
}
