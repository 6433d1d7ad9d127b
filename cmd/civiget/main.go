package main

import "github.com/civiget/civiget/cmd"

func main() {
	cmd.Execute()
}
