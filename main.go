package main

import "github.com/jdlms/tip-calculator/cmd"

func main() {
	cmd.Execute()
}
