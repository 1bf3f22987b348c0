package ledger

// Print flag values stored on an entry. Anything an import encounters that is
// not one of these is coerced to PrintNo with a row warning.
const (
	PrintYes = "Yes"
	PrintNo  = "No"
)

// Entry is one production record. ID is assigned by the store on insert and
// never reused; Date always holds a canonical YYYY-MM-DD string once
// persisted. Qty is deliberately free text ("12 boxes" is valid).
type Entry struct {
	ID        int64
	Article   string
	Card      string
	Color     string
	Size      string
	Qty       string
	Component string
	PrintOpt  string
	Date      string
}
