package main

import "github.com/genericlastname/crosspub/cmd"

func main() {
	cmd.Execute()
}
