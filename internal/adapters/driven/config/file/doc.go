// Package file provides file-based implementations of driven port
// interfaces. Configuration is persisted as TOML under ~/.ruleforge.
package file
