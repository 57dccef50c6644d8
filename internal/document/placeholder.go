package document

// Placeholder strings substituted for blank fields so that every output format
// shows the same structure for the same document.
const (
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
	YourName     = "Your Name"

	OpenPresent = "Present"
	OpenOngoing = "Ongoing"
)

// Placeholder returns the trimmed value, or fallback when the value is blank.
func Placeholder(value, fallback string) string {
	if v := CleanText(value); v != "" {
		return v
	}
	return fallback
}
