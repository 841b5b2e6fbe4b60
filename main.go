package main

import "github.com/jsphweid/composer/cmd"

func main() {
	cmd.Execute()
}
