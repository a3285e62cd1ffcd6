// Package command provides a TextExtractor that pipes each page's raw
// wikitext through an external program and reads the plain text back
// from its standard output.
package command
