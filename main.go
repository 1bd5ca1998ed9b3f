package main

import "github.com/theirongolddev/pfin/cmd"

func main() {
	cmd.Execute()
}
