package keyboard

import (
	"uni_bot_go/callback"
	"uni_bot_go/db"
)

// Ключи текстов кнопок в таблице text.
const (
	KeyFreshman         = "MAIN_FRESHMAN"
	KeyCourse           = "MAIN_COURSE"
	KeyPlace            = "MAIN_PLACE"
	KeyPhone            = "MAIN_PHONE"
	KeyLink             = "MAIN_LINK"
	KeyAbout            = "MAIN_ABOUT"
	KeyBack             = "MAIN_BACK"
	KeyFreshmanRegister = "FRESHMAN_REGISTER"
	KeyCoursesBySem     = "COURSE_COURSES_BY_SEMESTER"
	KeyCoursesByType    = "COURSE_COURSES_BY_TYPE"
)

// Labels resolves button captions by key.
type Labels interface {
	Button(key string) string
}

// Item is one button. Inline buttons carry a Token or a URL; reply buttons
// carry only a Label.
type Item struct {
	Label string
	Token callback.Token
	URL   string
}

// Layout is a flat list of buttons and the plan that arranges them.
type Layout struct {
	Items []Item
	Plan  GridPlan
	// Reply marks a reply keyboard; otherwise the layout is inline.
	Reply bool
}

// withBack mirrors items for right-to-left rows and appends back.
func withBack(items []Item, back Item) Layout {
	out := append(RightToLeft(items), back)
	return Layout{Items: out, Plan: BackPlan(len(items))}
}

func MainMenu(l Labels) Layout {
	keys := []string{KeyFreshman, KeyCourse, KeyPlace, KeyPhone, KeyLink, KeyAbout}
	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		items = append(items, Item{Label: l.Button(k)})
	}
	return Layout{Items: items, Plan: FixedPlan(1, 2, 2, 1), Reply: true}
}

// Freshman is the freshman root, or with back set, only a way back to it.
func Freshman(l Labels, back bool) Layout {
	if back {
		return Layout{
			Items: []Item{{Label: l.Button(KeyBack), Token: callback.Freshman{Mode: callback.ModeMenu}}},
			Plan:  ColumnPlan(1),
		}
	}
	return Layout{
		Items: []Item{
			{Label: l.Button(KeyFreshmanRegister), Token: callback.Freshman{Mode: callback.ModeRegister}},
			{Label: l.Button(KeyBack), Token: callback.MainMenu{}},
		},
		Plan: ColumnPlan(2),
	}
}

func CourseRoot(l Labels) Layout {
	return Layout{
		Items: []Item{
			{Label: l.Button(KeyCoursesBySem), Token: callback.CoursesFilter{FilterBy: callback.Str(callback.FilterSemester)}},
			{Label: l.Button(KeyCoursesByType), Token: callback.CoursesFilter{FilterBy: callback.Str(callback.FilterType)}},
			{Label: l.Button(KeyBack), Token: callback.MainMenu{}},
		},
		Plan: ColumnPlan(3),
	}
}

// FilterChoices lists the values of one course filter (semesters or course
// types). Back returns to the filter selection.
func FilterChoices(l Labels, filter string, choices []db.Choice) Layout {
	items := make([]Item, 0, len(choices))
	for _, c := range choices {
		items = append(items, Item{
			Label: c.Label,
			Token: callback.CoursesFilter{FilterBy: callback.Str(filter), Value: callback.Int(c.Value)},
		})
	}
	return withBack(items, Item{Label: l.Button(KeyBack), Token: callback.CoursesFilter{}})
}

// CourseList lists courses matched by filter. Back returns to the filter values.
func CourseList(l Labels, filter string, courses []db.Course) Layout {
	items := make([]Item, 0, len(courses))
	for _, c := range courses {
		items = append(items, Item{
			Label: c.FaTitle,
			Token: callback.CourseSelect{FilterBy: filter, ID: c.ID},
		})
	}
	return withBack(items, Item{
		Label: l.Button(KeyBack),
		Token: callback.CoursesFilter{FilterBy: callback.Str(filter)},
	})
}

// CourseBack leads from a course page to the list it was opened from. A nil
// value falls back to the filter values.
func CourseBack(l Labels, filter string, value *int64) Layout {
	return withBack(nil, Item{
		Label: l.Button(KeyBack),
		Token: callback.CoursesFilter{FilterBy: callback.Str(filter), Value: value},
	})
}

func PlaceGroups(l Labels, groups []db.Choice) Layout {
	items := make([]Item, 0, len(groups))
	for _, g := range groups {
		items = append(items, Item{Label: g.Label, Token: callback.PlaceGroup{Group: g.Value}})
	}
	return withBack(items, Item{Label: l.Button(KeyBack), Token: callback.MainMenu{}})
}

func PlaceList(l Labels, places []db.Place) Layout {
	items := make([]Item, 0, len(places))
	for _, p := range places {
		items = append(items, Item{
			Label: p.Name,
			Token: callback.PlaceLocation{Latitude: p.Latitude, Longitude: p.Longitude},
		})
	}
	return withBack(items, Item{Label: l.Button(KeyBack), Token: callback.PlaceMenu{}})
}

// Links renders URL buttons.
func Links(l Labels, links []db.Link) Layout {
	items := make([]Item, 0, len(links))
	for _, link := range links {
		items = append(items, Item{Label: link.Name, URL: link.Address})
	}
	return withBack(items, Item{Label: l.Button(KeyBack), Token: callback.MainMenu{}})
}
