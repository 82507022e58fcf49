package main

import "ultrakill-save-editor/cmd"

func main() {
	cmd.Execute()
}
