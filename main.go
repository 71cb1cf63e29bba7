// Package main is the entry point of hellosrv.
package main

import "github.com/yeisme/hellosrv/cmd"

func main() {
	cmd.Execute()
}
