// Package wizard provides the interactive project bootstrap prompt.
//
// The wizard collects a config file name, a project name and a short
// description from the user, re-prompting on invalid input via the
// validators package, and writes a starter config file to the configured
// output directory.
package wizard
