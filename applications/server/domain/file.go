package domain

// MIMETypePNG is the content type every decoded image is tagged with.
const MIMETypePNG = "image/png"

// File is an immutable bundle of content bytes plus a name and a MIME type.
// It is created once and never mutated afterwards.
type File struct {
	Name     string
	MIMEType string
	Content  []byte
}

func (f File) Size() int64 {
	return int64(len(f.Content))
}
