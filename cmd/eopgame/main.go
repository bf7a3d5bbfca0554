package main

import "github.com/zeroXten/alexa-threat-model-game/internal/cli"

func main() {
	cli.Execute()
}
