package cloudwriter

import "context"

// CloudWriter buffers bytes for one cloud object; Close uploads them.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory opens writers against a bucket.
type CloudWriterFactory interface {
	NewWriter(ctx context.Context, bucket, objectPath string) (CloudWriter, error)
}
