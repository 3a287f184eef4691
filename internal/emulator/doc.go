// Package emulator defines the detection result types: the immutable Emulator
// descriptor, the closed ExecutionSyntax and DetectionMethod sets, the
// hardcoded candidate catalogue, and the invocation builder.
package emulator
