// Package version reports the dnsdumper build. Values come from -ldflags when
// set, otherwise from runtime/debug.BuildInfo.
package version
