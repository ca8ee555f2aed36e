package output

import (
	"fmt"

	"github.com/abdul-hamid-achik/flicker/packages/assertions"
)

// skipNote describes a skipped check, including what a disabled check would
// have done when it was evaluated anyway.
func skipNote(r *assertions.Result) string {
	if r.SkipReason == "filtered out" {
		return ""
	}
	note := r.SkipReason
	if r.WouldPass != nil {
		if *r.WouldPass {
			note += ", passes: bug may be fixed"
		} else {
			note += ", still failing"
		}
	}
	return note
}

// checkID is the name a check is reported under.
func checkID(r *assertions.Result) string {
	return fmt.Sprintf("%s/%s", r.Kind, r.Name)
}
