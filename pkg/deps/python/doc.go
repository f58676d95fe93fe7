// Package python reads Python dependency declarations from requirements.txt.
//
// Each pre-filtered line is matched against
//
//	^([a-zA-Z0-9._-]+)(?:([<>=!~]=|[<>])(.+))?$
//
// so "flask==2.0.1" yields name "flask", constraint "==" and version
// "2.0.1". Operators ==, >=, <=, ~=, != are tried before > and <. A line
// that does not match (an editable install, a URL, an option flag) is kept as
// a best-effort record named after the whole line.
package python
