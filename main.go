// Package main is the entry point for the boggle CLI and server.
package main

import "github.com/robalobadob/boggle/cmd"

func main() {
	cmd.Execute()
}
