// Package cli provides the cobra command tree for wikiplain.
//
// Commands talk to the core only through the driving ports. The services
// are built lazily by a Bootstrap installed from main, so global flags such
// as --config-dir are parsed before anything touches the disk. Tests replace
// the package-level services with mocks instead.
package cli
