package main

// Default limits for CLI commands.
const (
	DefaultSeedLogs = 500
	DefaultChartBar = 40
	MaxTableRows    = 200
)
