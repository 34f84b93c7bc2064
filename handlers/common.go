package handlers

import (
	"fmt"
	"strings"

	"uni_bot_go/db"
)

func yesNo(v bool) string {
	if v {
		return "✅ دارد"
	}
	return "❌ ندارد"
}

// formatCourse собирает карточку курса.
func formatCourse(c db.Course, prerequisites []db.Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📚 %s\n", c.FaTitle)
	if c.EnTitle.Valid && c.EnTitle.String != "" {
		fmt.Fprintf(&b, "🔤 %s\n", c.EnTitle.String)
	}
	if c.OfferingSemester.Valid {
		fmt.Fprintf(&b, "🗓 ترم ارائه: %d\n", c.OfferingSemester.Int32)
	}

	fmt.Fprintf(&b, "🔢 تعداد واحد: %d\n", c.Credit)
	if c.QuizCredit > 0 {
		fmt.Fprintf(&b, "✏️ واحد حل تمرین: %d\n", c.QuizCredit)
	}
	if label := db.ChoiceLabel(db.UnitTypes(), int64(c.UnitType)); label != "" {
		fmt.Fprintf(&b, "🧪 نوع واحد: %s\n", label)
	}
	if label := db.ChoiceLabel(db.CourseTypes(), int64(c.CourseType)); label != "" {
		fmt.Fprintf(&b, "🗂 نوع درس: %s\n", label)
	}
	fmt.Fprintf(&b, "📝 امتحان: %s\n", yesNo(c.HasExam))
	fmt.Fprintf(&b, "🛠 پروژه: %s\n", yesNo(c.HasProject))

	if len(prerequisites) > 0 {
		names := make([]string, 0, len(prerequisites))
		for _, p := range prerequisites {
			names = append(names, p.FaTitle)
		}
		fmt.Fprintf(&b, "🔗 پیش‌نیاز: %s\n", strings.Join(names, "، "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatPhones(title string, phones []db.Phone) string {
	var b strings.Builder
	b.WriteString(title)
	for _, p := range phones {
		fmt.Fprintf(&b, "\n\n☎️ %s\n%s", p.Name, p.PhoneNumber)
	}
	return b.String()
}
