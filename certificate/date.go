package certificate

import (
	"fmt"
	"time"
)

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// buddhistEraOffset converts a Gregorian year to the Thai solar calendar.
const buddhistEraOffset = 543

// LongDate formats d as a long date: "14 October 2026" for "en" and
// "14 ตุลาคม 2569" for "th". Unknown locales use English.
func LongDate(d time.Time, locale string) string {
	if locale == "th" {
		return fmt.Sprintf("%d %s %d", d.Day(), thaiMonths[d.Month()-1], d.Year()+buddhistEraOffset)
	}
	return d.Format("2 January 2006")
}
