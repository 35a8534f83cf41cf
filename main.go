package main

import "page-server/cmd"

func main() {
	cmd.Execute()
}
