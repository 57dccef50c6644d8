package export

import "fmt"

// Result is what every export call returns. It never carries an error value:
// failures are reported through Success and Message.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ExportID string `json:"exportId"`
	Format   Format `json:"format"`
	Filename string `json:"filename,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int    `json:"size,omitempty"`
	Pages    int    `json:"pages,omitempty"`
}

// Artifact is a complete exported file ready to be saved.
type Artifact struct {
	Format   Format
	Filename string
	MimeType string
	Data     []byte
	Pages    int
}

func successResult(id string, a Artifact) Result {
	return Result{
		Success:  true,
		Message:  fmt.Sprintf("%s exported successfully as %s", a.Format.Label(), a.Filename),
		ExportID: id,
		Format:   a.Format,
		Filename: a.Filename,
		MimeType: a.MimeType,
		Size:     len(a.Data),
		Pages:    a.Pages,
	}
}

func failureResult(id string, f Format, err error) Result {
	return Result{
		Success:  false,
		Message:  fmt.Sprintf("Failed to export %s: %v", f.Label(), err),
		ExportID: id,
		Format:   f,
	}
}
