package main

import (
	"context"
	"hltvapi-backend/cmd/hltv-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
