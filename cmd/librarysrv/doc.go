// Command librarysrv serves the library circulation HTTP API.
//
// It is configured from the environment, see the config package for the variables.
package main
