package domain

import "io"

// PendingFile is an uploaded file that passed validation but has not been
// written to media storage yet. Data is the open multipart part; the caller
// is responsible for closing it.
type PendingFile struct {
	Filename    string
	SizeBytes   int64
	MimeType    string
	ImageWidth  *int
	ImageHeight *int
	Data        io.Reader
}
