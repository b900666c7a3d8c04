// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the merge pipeline that turns a data
// directory of roster and grade files into one report, decoupled from any
// specific entrypoint like a CLI.
package app
