package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/spiten/spiten/internal/config"
	"github.com/spiten/spiten/internal/logger"
	"github.com/spiten/spiten/internal/migration"
	"github.com/spiten/spiten/internal/server"
	"github.com/spiten/spiten/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		// Schema migration must run before the server bootstrap touches
		// the tables.
		migration.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
