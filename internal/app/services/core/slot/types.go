package slot

import "time"

// weekendDays are the only weekdays offered for consultations.
var weekendDays = map[time.Weekday]bool{
	time.Saturday: true,
	time.Sunday:   true,
}

func isWeekend(day time.Time) bool {
	return weekendDays[day.Weekday()]
}
