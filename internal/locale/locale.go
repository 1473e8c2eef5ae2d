// Package locale holds the two language packs. The set is closed and small,
// so packs live in a fixed map of structs rather than behind an interface.
package locale

// ID is a locale tag. Only the values declared below exist.
type ID string

const (
	English ID = "en"
	Russian ID = "ru"
)

// Strings are the static labels the page needs.
type Strings struct {
	AppTitle   string `json:"appTitle"`
	AddTask    string `json:"addTask"`
	TaskName   string `json:"taskName"`
	FirstDueIn string `json:"firstDueIn"`
	Due        string `json:"due"`
	Complete   string `json:"complete"`
	Undo       string `json:"undo"`
	Delete     string `json:"delete"`
	MoveUp     string `json:"moveUp"`
	MoveDown   string `json:"moveDown"`
	Later      string `json:"later"`
	Earlier    string `json:"earlier"`
	Settings   string `json:"settings"`
	Language   string `json:"language"`
	Theme      string `json:"theme"`
	ShareLink  string `json:"shareLink"`
	Import     string `json:"import"`
	Imported   string `json:"imported"`
	NoTasks    string `json:"noTasks"`
}

// Pack is one language. Every formatter is total: any integer in, some
// string out, never a panic. Weekdays and Months are Sunday-first and
// January-first.
type Pack struct {
	ID       ID
	Weekdays [7]string
	Months   [12]string
	Strings  Strings

	// FormatDuration renders a positive days-remaining count.
	FormatDuration func(days int) string
	// FormatOverdue renders a non-negative days-overdue count.
	FormatOverdue func(days int) string
	// FormatEveryNDays renders the recurrence period, n >= 1.
	FormatEveryNDays func(n int) string
	// FormatClock renders a wall-clock time.
	FormatClock func(h, m int) string
	// FormatDate renders a date from Sunday-first weekday index,
	// day of month and January-first month index.
	FormatDate func(weekday, day, month int) string
}

var packs = map[ID]Pack{
	English: english,
	Russian: russian,
}

// Get returns the pack for id, falling back to English for unknown tags.
func Get(id ID) Pack {
	if p, ok := packs[id]; ok {
		return p
	}
	return packs[English]
}

// Known reports whether id names a real pack.
func Known(id ID) bool {
	_, ok := packs[id]
	return ok
}

// IDs lists the available locale tags in a stable order.
func IDs() []ID {
	return []ID{English, Russian}
}
