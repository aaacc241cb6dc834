// Package executor runs the command line chosen by the resolver.
//
// In norun mode the command is printed on stdout instead, so that callers
// such as mail readers can run it themselves. Otherwise it is handed to
// `sh -c` with the caller's standard streams attached and its exit status
// is reported back for the process to propagate.
package executor
