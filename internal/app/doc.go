// Package app wires configuration, the Origin session and client, the lookup service
// and the renderer into the commands exposed by the CLI.
package app
