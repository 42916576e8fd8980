// Package coverage provides the rule comparing declared links with the
// content files on disk.
//
//   - NC06: Route Coverage - every content file is linked and every link has a file
package coverage
