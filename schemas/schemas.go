// Package schemas embeds the JSON Schemas of the wizard form payloads.
package schemas

import _ "embed"

// ResumeForm is the schema of the Resume wizard's form state.
//
//go:embed resume_form.schema.json
var ResumeForm []byte

// SOPForm is the schema of the Statement of Purpose wizard's form state.
//
//go:embed sop_form.schema.json
var SOPForm []byte
