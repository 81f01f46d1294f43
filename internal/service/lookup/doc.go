// Package lookup resolves a command-line query (one name, or one or more IDs) into Origin users.
package lookup
