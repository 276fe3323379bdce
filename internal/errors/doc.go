// Package errors provides structured errors with stable codes for the
// dictmark CLI and libraries.
//
// Each registered code carries a category, message and detail; errors
// support errors.Is/As through Unwrap and render to a colored terminal
// format for the CLI. The render boundary itself never returns these;
// rendering degrades to placeholder markup instead of failing.
package errors
