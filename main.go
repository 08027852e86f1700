package main

import "github.com/c0depwn/jackfront/cmd"

func main() {
	cmd.Exec()
}
