// Package diagnostics renders the result of the client checks as plain
// messages for an operator.
//
// Render never prints anything itself. Callers (the check command and the
// clientcheck HTTP feature) decide how to display the messages.
package diagnostics
