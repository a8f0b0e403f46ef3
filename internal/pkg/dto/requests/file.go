package requests

// UploadedFile is a multipart part read fully into memory. ContentType is
// sniffed from the bytes, never taken from the client header.
type UploadedFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}
