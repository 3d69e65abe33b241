// Package resolver wraps the external resolver process (dig by default).
// The rest of dnsdumper depends only on the Runner contract: one blocking call
// per (name, type) returning stdout, empty for absent records and an error for
// timeouts and non-zero exits.
package resolver
