package main

// Exit codes shared by all subcommands. A scheduler watching `check`
// only needs to distinguish 0 (clean) from 1 (drift found) from >1
// (the job itself is broken).
const (
	ExitSuccess     = 0 // Success; for check: no differences found
	ExitError       = 1 // General error; for check: differences found
	ExitConfigError = 2 // Configuration error (unreadable config, invalid style)
	ExitDataError   = 3 // Data error (unreadable or unparseable bibliography)
)
