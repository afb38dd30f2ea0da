package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppCommands(t *testing.T) {
	app := newApp()

	migrate := app.Command("migrate")
	if assert.NotNil(t, migrate) {
		var names []string
		for _, sub := range migrate.Subcommands {
			names = append(names, sub.Name)
		}
		assert.Equal(t, []string{"up", "down"}, names)
	}
	assert.NotNil(t, app.Command("seed"))
}
