package main

import "github.com/jsphweid/blockbeat/cmd"

func main() {
	cmd.Execute()
}
