package main

import "fitfeed/cmd"

func main() {
	cmd.Execute()
}
