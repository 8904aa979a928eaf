package application

import (
	"encoding/base64"
)

// Resume metadata limits. Size caps the decoded payload.
const (
	MaxResumeSize = 10 << 20 // 10 MiB

	defaultResumeName = "resume.pdf"
	defaultResumeType = "application/pdf"
)

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Resume is the embedded resume payload. Data is base64 text stored directly
// in the application row. A blank Resume means none was uploaded; the object
// itself is always present.
type Resume struct {
	Data string `db:"resume_data" json:"data"`
	Name string `db:"resume_name" json:"name"`
	Type string `db:"resume_type" json:"type"`
	Size int64  `db:"resume_size" json:"size"`
}

// IsEmpty reports whether no resume payload was stored
func (r Resume) IsEmpty() bool {
	return r.Data == ""
}

// Validate checks base64 well-formedness, the decoded size cap and the MIME
// allowlist. The client-supplied size is replaced with the decoded length so
// the stored metadata always matches the payload. Empty resumes are always
// valid.
func (r *Resume) Validate() error {
	if r.IsEmpty() {
		r.Size = 0
		return nil
	}

	decoded, err := base64.StdEncoding.DecodeString(r.Data)
	if err != nil {
		return ErrInvalidResume().WithDetail("data", "not valid base64")
	}
	if len(decoded) > MaxResumeSize {
		return ErrResumeTooLarge().WithDetail("size", len(decoded))
	}
	if r.Type != "" && !allowedResumeTypes[r.Type] {
		return ErrInvalidResume().WithDetail("type", r.Type)
	}

	r.Size = int64(len(decoded))
	return nil
}

// Decode returns the raw bytes with the content type and filename to serve
// them under, applying the PDF defaults for blank metadata.
func (r Resume) Decode() ([]byte, string, string, error) {
	if r.IsEmpty() {
		return nil, "", "", ErrResumeNotFound()
	}

	data, err := base64.StdEncoding.DecodeString(r.Data)
	if err != nil {
		return nil, "", "", ErrInvalidResume().WithDetail("data", "not valid base64")
	}

	contentType := r.Type
	if contentType == "" {
		contentType = defaultResumeType
	}
	name := r.Name
	if name == "" {
		name = defaultResumeName
	}

	return data, contentType, name, nil
}
