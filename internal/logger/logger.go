package logger

import "fmt"

// ANSI color codes for console output.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("%s%s  Neutron Plotter %s%s\n", bold, cyan, version, reset)
	fmt.Printf("%s  Supercharged route planning for the neutron highway%s\n\n", dim, reset)
}

// Info prints an informational message with a tag.
func Info(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", cyan, tag, reset, msg)
}

// Success prints a success message with a tag.
func Success(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", green, tag, reset, msg)
}

// Warn prints a warning message with a tag.
func Warn(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", yellow, tag, reset, msg)
}

// Error prints an error message with a tag.
func Error(tag, msg string) {
	fmt.Printf("%s[%s]%s %s\n", red, tag, reset, msg)
}

// Section prints a section header for grouped output.
func Section(title string) {
	fmt.Printf("\n%s%s── %s%s\n", bold, cyan, title, reset)
}

// Stats prints a labeled statistic under a section.
func Stats(label string, value interface{}) {
	fmt.Printf("  %s%-14s%s %v\n", dim, label, reset, value)
}
