package config

import (
	"fmt"
)

// Report returns the effective options as name and value rows.
func (c *Config) Report() (rows [][]string) {
	return [][]string{
		{"config-file", c.options.ConfigFile},
		{"debug", fmt.Sprintf("%t", c.Debug())},
		{"log-level", c.LogLevel().String()},
		{"assets-path", c.AssetsPath()},
		{"detector-url", c.DetectorUrl()},
		{"detector-timeout", c.DetectorTimeout().String()},
		{"detector-min-score", fmt.Sprintf("%.2f", c.DetectorOptions().MinScore)},
		{"jpeg-quality", fmt.Sprintf("%d", c.JpegQuality())},
		{"preserve-aspect", fmt.Sprintf("%t", c.PreserveAspect())},
		{"http-host", c.HttpHost()},
		{"http-port", fmt.Sprintf("%d", c.HttpPort())},
		{"workers", fmt.Sprintf("%d", c.Workers())},
	}
}
