// Package resolution provides rules checking that declared links resolve
// to content files of the right kind.
//
//   - NC03: Topnav Directories - topnav links must name a directory with an index file
//   - NC04: Sidebar Directories - sidebar directory links must name a directory with an index file
//   - NC05: File Routes - file links must name an existing content file
//
// The site root "/" is exempt from all three: it always maps to the root
// index file and is covered by NC06.
package resolution
