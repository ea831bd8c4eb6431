// Package filesystem provides local-disk adapters for document files:
// a FileStore for reading and writing documents, and a Watcher that reports
// changes other programs make to the open document.
package filesystem
