package model

import "io"

// InputFile is a payload source whose declared Size is checked against the image capacity before Content is read.
type InputFile struct {
	Name    string
	Content io.Reader
	Size    int64
}

// OutputFile is a decoded payload on its way to disk, Name being the destination path.
type OutputFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}
