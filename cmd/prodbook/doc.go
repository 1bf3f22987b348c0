// Package main hosts the prodbook CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into ledger
// operations: entry CRUD, filtered listing, spreadsheet import with column
// mapping, xlsx and PDF export, product image management, password
// maintenance, and configuration scaffolding. It centralizes configuration
// resolution, database locking, and structured logging setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
