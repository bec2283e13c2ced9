package main

import "github.com/iksnae/video-transcriber/cmd"

func main() {
	cmd.Execute()
}
