// Package command implements the termemu command line.
package command
