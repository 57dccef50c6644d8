package document

import (
	"errors"
	"testing"

	"github.com/jonathan/docexport/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Resume(t *testing.T) {
	payload := []byte(`{
		"personalInfo": {"fullName": "Jane Doe"},
		"education": [{"id": 1, "institutionName": "MIT", "degreeType": "bachelor", "isCurrent": false, "endDate": "2020-05"}]
	}`)

	doc, err := Decode(KindResume, payload, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Author.FullName)

	visible := doc.VisibleSections()
	require.Len(t, visible, 1)
	assert.Equal(t, RoleEducation, visible[0].Role)
}

func TestDecode_SOP(t *testing.T) {
	payload := []byte(`{"personalInfo": {"fullName": "Jane Doe"}, "statement": {"introduction": "Hello"}}`)

	doc, err := Decode(KindSOP, payload, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, KindSOP, doc.Kind)
	require.Len(t, doc.VisibleSections(), 1)
}

func TestDecode_SchemaViolation(t *testing.T) {
	_, err := Decode(KindResume, []byte(`{"personalInfo": {"fullName": 7}}`), fixedNow)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := Decode(Kind("letter"), []byte(`{}`), fixedNow)
	require.Error(t, err)
}
