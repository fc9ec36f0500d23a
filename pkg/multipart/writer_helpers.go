package multipart

import "os"

// FormBuilder incrementally assembles an EncodeForm, for callers that
// don't already have the whole form structure in hand — grounded on the
// incremental create-part ergonomics of the third-party multipart writers
// in the retrieval pack (CreateFormField/CreateFormFile).
type FormBuilder struct {
	form EncodeForm
}

// NewFormBuilder returns an empty FormBuilder.
func NewFormBuilder() *FormBuilder {
	return &FormBuilder{form: EncodeForm{}}
}

// CreateFormField appends a scalar data part under name.
func (b *FormBuilder) CreateFormField(name string, value Scalar) {
	b.form[name] = append(b.form[name], EncodePart{Scalar: &value})
}

// CreateFormFile appends a file-bearing part backed by an already-open
// file handle; the caller retains ownership of file and must close it.
func (b *FormBuilder) CreateFormFile(name, filename string, file *os.File) {
	b.form[name] = append(b.form[name], EncodePart{
		HasFile:    true,
		Filename:   filename,
		FileSource: file,
	})
}

// CreateFormFileFromPath appends a file-bearing part backed by a path on
// disk; Encode opens and closes it.
func (b *FormBuilder) CreateFormFileFromPath(name, filename, pathname string) {
	b.form[name] = append(b.form[name], EncodePart{
		HasFile:  true,
		Filename: filename,
		Pathname: pathname,
	})
}

// Form returns the assembled EncodeForm.
func (b *FormBuilder) Form() EncodeForm {
	return b.form
}
