package locale

import "fmt"

var enWeekdays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var enMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var english = Pack{
	ID:       English,
	Weekdays: enWeekdays,
	Months:   enMonths,
	Strings: Strings{
		AppTitle:   "One-Click Routine",
		AddTask:    "Add task",
		TaskName:   "Task name",
		FirstDueIn: "First due in (days)",
		Due:        "due",
		Complete:   "Done",
		Undo:       "Undo",
		Delete:     "Delete",
		MoveUp:     "Up",
		MoveDown:   "Down",
		Later:      "+1 day",
		Earlier:    "-1 day",
		Settings:   "Settings",
		Language:   "Language",
		Theme:      "Theme",
		ShareLink:  "Copy share link",
		Import:     "Import",
		Imported:   "tasks imported",
		NoTasks:    "No tasks yet. Add one above.",
	},
	FormatDuration:   enDuration,
	FormatOverdue:    enOverdue,
	FormatEveryNDays: enEveryNDays,
	FormatClock:      clock24,
	FormatDate:       enDate,
}

// enDuration keeps short spans verbose and folds longer ones into the
// compact week notation ("2w", "1w 3d").
func enDuration(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days%7 == 0:
		return fmt.Sprintf("%dw", days/7)
	default:
		return fmt.Sprintf("%dw %dd", days/7, days%7)
	}
}

func enOverdue(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days < 7:
		return enCount(days, "day") + " ago"
	case days < 30:
		out := enCount(days/7, "week")
		if rem := days % 7; rem > 0 {
			out += " " + enCount(rem, "day")
		}
		return out + " ago"
	default:
		// Months are flat 30-day blocks; the remainder shows as weeks only.
		out := enCount(days/30, "month")
		if weeks := (days % 30) / 7; weeks > 0 {
			out += " " + enCount(weeks, "week")
		}
		return out + " ago"
	}
}

func enEveryNDays(n int) string {
	if n == 1 {
		return "every day"
	}
	return fmt.Sprintf("every %d days", n)
}

func enDate(weekday, day, month int) string {
	return fmt.Sprintf("%s, %s %d", enWeekdays[weekday%7], enMonths[month%12], day)
}

func enCount(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func clock24(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}
