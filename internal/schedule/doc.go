// Package schedule talks to the remote TV-schedule service and picks the
// broadcast entry that best matches a normalized filename.
//
// The service speaks a loosely-delimited pipe/tag text format that only
// looks like XML. Parsing is split tokenize-then-interpret: feed.go turns a
// response body into typed entries, matcher.go selects among them, and
// subtitle.go interprets the subtitle field's three sub-grammars. client.go
// owns the three endpoints and the shared retrying fetch.
package schedule
