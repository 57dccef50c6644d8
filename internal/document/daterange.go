package document

// DateRange is the period of an entry. Open marks a current/ongoing entry, in
// which case End is ignored. Single marks a point-in-time entry (an award date).
type DateRange struct {
	Start  string
	End    string
	Open   bool
	Single bool
}

// Format renders "start - end". Current entries show openLabel in place of the
// end date regardless of End; blank sides become "Not specified".
func (d DateRange) Format(openLabel string) string {
	start := Placeholder(d.Start, NotSpecified)
	if d.Single {
		return start
	}
	end := Placeholder(d.End, NotSpecified)
	if d.Open {
		end = openLabel
	}
	return start + " - " + end
}
