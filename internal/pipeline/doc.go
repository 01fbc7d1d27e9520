// Package pipeline drives a single rename end to end: normalize the
// filename, position the recording in time, resolve the program against
// the schedule service, render the template, and move the file.
package pipeline
