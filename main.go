package main

import "github.com/nourmourtada10/sudoku-go/cmd"

func main() {
	cmd.Execute()
}
