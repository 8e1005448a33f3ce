package main

import "github.com/corpdir/corpdir/cmd"

func main() {
	cmd.Execute()
}
