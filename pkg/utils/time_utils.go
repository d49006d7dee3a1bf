package utils

import "time"

// India Standard Time (IST, +05:30)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}()

// NowRFC3339 stamps chat messages; every timestamp in the log uses the same
// zone so lexicographic order equals chronological order.
func NowRFC3339() string {
	return time.Now().In(istLoc).Format(time.RFC3339)
}
