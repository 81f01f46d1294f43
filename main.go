/*
This file is the entry point for the origin-lookup application.
It executes the root command defined in the cmd package.
*/
package main

import "github.com/oshokin/origin-lookup/cmd"

func main() {
	cmd.Execute()
}
