package main

import "github.com/jsphweid/chordeye/cmd"

func main() {
	cmd.Execute()
}
