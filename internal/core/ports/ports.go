package ports

import (
	"context"
)

// Module is one bundled character record: the path it was read from and its
// raw JSON bytes.
type Module struct {
	Path string
	Data []byte
}

// ModuleSource defines the port for reading the bundled character records
type ModuleSource interface {
	// Modules returns every record the source knows about, in manifest order.
	// Records that cannot be read are left out; only a failure of the source
	// itself (e.g. an unreadable manifest) is an error.
	Modules(ctx context.Context) ([]Module, error)
}
