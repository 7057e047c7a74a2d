package main

import "kml-smoke/cmd"

func main() {
	cmd.Execute()
}
