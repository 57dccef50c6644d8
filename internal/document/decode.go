package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/docexport/internal/schemas"
	rootschemas "github.com/jonathan/docexport/schemas"
)

// SchemaFor returns the embedded JSON Schema of a kind's form payload.
func SchemaFor(kind Kind) ([]byte, error) {
	switch kind {
	case KindResume:
		return rootschemas.ResumeForm, nil
	case KindSOP:
		return rootschemas.SOPForm, nil
	default:
		return nil, fmt.Errorf("no schema for document kind %q", kind)
	}
}

// Validate checks a raw wizard payload against the kind's schema.
func Validate(kind Kind, payload []byte) error {
	schema, err := SchemaFor(kind)
	if err != nil {
		return err
	}
	return schemas.ValidateBytes(string(kind)+"_form.schema.json", schema, payload)
}

// Decode validates a raw wizard payload and builds a Document from it.
func Decode(kind Kind, payload []byte, now time.Time) (*Document, error) {
	if err := Validate(kind, payload); err != nil {
		return nil, err
	}

	switch kind {
	case KindResume:
		var form ResumeForm
		if err := json.Unmarshal(payload, &form); err != nil {
			return nil, fmt.Errorf("failed to decode resume form: %w", err)
		}
		return FromResumeForm(form, now)
	case KindSOP:
		var form SOPForm
		if err := json.Unmarshal(payload, &form); err != nil {
			return nil, fmt.Errorf("failed to decode SOP form: %w", err)
		}
		return FromSOPForm(form, now)
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
}
