// Command dtcheck checks a darktable photo library for inconsistencies
// between the SQLite catalog and the XMP sidecar files on disk. It never
// writes to the library.
package main
