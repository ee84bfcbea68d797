// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/rpc-param-converter/src/config"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/logger"
	"github.com/H0llyW00dzZ/rpc-param-converter/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion = version.Version // default version

// GetVersion returns the version reported by the server. It is the package
// default until [Run] is called with another version.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server on stdio.
//
// Configuration is loaded from the file named by the
// RPC_PARAM_CONVERTER_CONFIG environment variable, or defaults when unset.
// Logs go to stderr and only when the configuration selects the json log
// format, since stdout carries the protocol.
//
// Run returns when stdin is closed, or with a "server shutdown" error on
// SIGINT or SIGTERM.
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewJSONLogger(os.Stderr, cfg.Log.Format != logger.FormatJSON)

	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(tools, toolsWithConfig)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithInstructions(instructions).
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithResources(createResources()...).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	log.Printf("%s %s serving on stdio with %d conversion rules", serverName, version, cfg.Table().Len())

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
