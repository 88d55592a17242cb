// Package consolehandler provides a handler that writes formatted records
// to any io.Writer (default: os.Stdout).
//
// By default records use the same line format as the file handler. When
// color is enabled the level column is colorized with fatih/color; in
// ColorAuto mode that follows fatih/color's own terminal detection.
package consolehandler
