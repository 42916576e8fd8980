// Package configuration provides rules about how links are declared.
//
//   - NC01: Unique Routes - a link repeats within topnav or within sidebar
//   - NC02: Leading Slash - a link does not start with /
package configuration
