package main

import "github.com/dineforge/restalytics/cmd"

func main() {
	cmd.Execute()
}
