package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// CredentialsFilePermissions sets the permissions for files holding session cookies and tokens: (rw-------).
	// Owner: read and write;
	// Group and others: no access.
	CredentialsFilePermissions os.FileMode = 0o600
)
