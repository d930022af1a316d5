// Package rules overrides logger levels by name using expr-lang expressions.
//
// A [Set] of rules is typically decoded from configuration:
//
//	- match: name startsWith "github.com/ardnew/logfront/cli"
//	  level: DEBUG
//	- match: name == "noisy"
//	  level: ERROR
//
// and applied to a [log.Factory] with [Wrap]. Rules are tried in order, and
// the first rule whose expression is true sets the minimum level of the new
// logger. Names matched by no rule keep the requested level.
package rules
