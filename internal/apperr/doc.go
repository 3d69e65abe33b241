// Package apperr defines shared error sentinels for dnsdumper.
// It is a leaf package with no internal imports so that low-level packages
// (resolver, record) can use the sentinels without import cycles.
package apperr
