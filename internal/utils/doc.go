// Package utils provides small helpers shared by the transport and client layers.
package utils
