package locale

import "fmt"

var ruWeekdays = [7]string{
	"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
}

// Month names are genitive, the case "5 января" wants.
var ruMonths = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var russian = Pack{
	ID:       Russian,
	Weekdays: ruWeekdays,
	Months:   ruMonths,
	Strings: Strings{
		AppTitle:   "Рутина в один клик",
		AddTask:    "Добавить задачу",
		TaskName:   "Название задачи",
		FirstDueIn: "Первый срок через (дней)",
		Due:        "срок",
		Complete:   "Готово",
		Undo:       "Отменить",
		Delete:     "Удалить",
		MoveUp:     "Вверх",
		MoveDown:   "Вниз",
		Later:      "+1 день",
		Earlier:    "-1 день",
		Settings:   "Настройки",
		Language:   "Язык",
		Theme:      "Тема",
		ShareLink:  "Скопировать ссылку",
		Import:     "Импорт",
		Imported:   "задач добавлено",
		NoTasks:    "Задач пока нет. Добавьте первую.",
	},
	FormatDuration:   ruDuration,
	FormatOverdue:    ruOverdue,
	FormatEveryNDays: ruEveryNDays,
	FormatClock:      clock24,
	FormatDate:       ruDate,
}

// ruPlural picks the grammatical form by the last digit of n. The 11-14
// teen forms are deliberately not special-cased here.
func ruPlural(n int, one, few, many string) string {
	switch {
	case n%10 == 1:
		return one
	case n%10 >= 2 && n%10 <= 4:
		return few
	default:
		return many
	}
}

func ruDays(n int) string {
	return fmt.Sprintf("%d %s", n, ruPlural(n, "день", "дня", "дней"))
}

// ruWeeksAcc uses the accusative forms that "N недель назад" wants.
func ruWeeksAcc(n int) string {
	return fmt.Sprintf("%d %s", n, ruPlural(n, "неделю", "недели", "недель"))
}

func ruDuration(days int) string {
	switch {
	case days <= 0:
		return "сегодня"
	case days == 1:
		// One remaining day reads as a date, not a count.
		return "завтра"
	case days < 7:
		return ruDays(days)
	case days%7 == 0:
		w := days / 7
		return fmt.Sprintf("%d %s", w, ruPlural(w, "неделя", "недели", "недель"))
	default:
		w := days / 7
		return fmt.Sprintf("%d %s %s", w, ruPlural(w, "неделя", "недели", "недель"), ruDays(days%7))
	}
}

func ruOverdue(days int) string {
	switch {
	case days <= 0:
		return "сегодня"
	case days < 7:
		return ruDays(days) + " назад"
	case days < 30:
		out := ruWeeksAcc(days / 7)
		if rem := days % 7; rem > 0 {
			out += " " + ruDays(rem)
		}
		return out + " назад"
	default:
		m := days / 30
		out := fmt.Sprintf("%d %s", m, ruPlural(m, "месяц", "месяца", "месяцев"))
		if weeks := (days % 30) / 7; weeks > 0 {
			out += " " + ruWeeksAcc(weeks)
		}
		return out + " назад"
	}
}

func ruEveryNDays(n int) string {
	if n == 1 {
		return "каждый день"
	}
	return "каждые " + ruDays(n)
}

func ruDate(weekday, day, month int) string {
	return fmt.Sprintf("%s, %d %s", ruWeekdays[weekday%7], day, ruMonths[month%12])
}
