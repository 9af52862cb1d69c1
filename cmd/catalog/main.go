package main

import (
	"context"

	"github.com/brequin/catalog/cmd/catalog/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
