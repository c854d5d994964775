// Package commands defines the streamchat CLI.
//
// Commands
//
//   - server [port]       Listen on all interfaces for one peer (default 8080)
//   - client [host:port]  Connect to a listening peer (default 127.0.0.1:8080)
//
// # Implementation
//
// Both subcommands build an app from the compiled-in default configuration
// and hand it the process streams; the listening side speaks first, the
// connecting side listens first. All handlers return errors to cobra, so
// any transport or handshake fault surfaces as a nonzero exit.
package commands
