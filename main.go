package main

import "ua-capabilities/cmd"

func main() {
	cmd.Execute()
}
