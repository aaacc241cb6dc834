// Package mailcap implements the mailcap database and the policy that turns
// a file and its MIME type into the shell command that should handle it.
//
// Key components:
//   - MatchType: type/subtype pattern matching with * wildcards
//   - Parser: reads the ordered database search list into Entry values
//   - Substitute: expands %s and %t in command templates, quoting the
//     filename for the single-quote context it lands in
//   - Evaluator: runs test= commands to decide whether an entry applies
//   - Resolver: walks entries in priority order and builds the final command
//
// Entries are produced fresh for every lookup and never cached.
package mailcap
