// Package episode resolves a program by episode number instead of by
// broadcast time. It reads a "#12" or "第12話" marker out of the filename,
// maps the preceding title to a program id through a local cache backed by
// the schedule service's keyword search, and looks the episode up directly.
package episode
