package keyboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"uni_bot_go/callback"
	"uni_bot_go/db"
)

// keyLabels returns the key itself as the caption.
type keyLabels struct{}

func (keyLabels) Button(key string) string { return key }

func labelsOf(l Layout) []string {
	out := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, it.Label)
	}
	return out
}

func TestMainMenu(t *testing.T) {
	l := MainMenu(keyLabels{})
	require.True(t, l.Reply)
	require.Equal(t, []string{KeyFreshman, KeyCourse, KeyPlace, KeyPhone, KeyLink, KeyAbout}, labelsOf(l))
	require.Equal(t, GridPlan{1, 2, 2, 1}, l.Plan)

	m, err := Markup(l)
	require.NoError(t, err)
	require.Len(t, m.ReplyKeyboard, 4)
	require.Equal(t, KeyCourse, m.ReplyKeyboard[1][0].Text)
	require.True(t, m.ResizeKeyboard)
}

func TestFreshman(t *testing.T) {
	l := Freshman(keyLabels{}, false)
	require.Equal(t, []string{KeyFreshmanRegister, KeyBack}, labelsOf(l))
	require.Equal(t, callback.Freshman{Mode: callback.ModeRegister}, l.Items[0].Token)
	require.Equal(t, callback.MainMenu{}, l.Items[1].Token)
	require.Equal(t, GridPlan{1, 1}, l.Plan)

	l = Freshman(keyLabels{}, true)
	require.Len(t, l.Items, 1)
	require.Equal(t, callback.Freshman{Mode: callback.ModeMenu}, l.Items[0].Token)
	require.Equal(t, GridPlan{1}, l.Plan)
}

func TestCourseRoot(t *testing.T) {
	l := CourseRoot(keyLabels{})
	require.Equal(t, GridPlan{1, 1, 1}, l.Plan)
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterSemester)}, l.Items[0].Token)
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterType)}, l.Items[1].Token)
	require.Equal(t, callback.MainMenu{}, l.Items[2].Token)
}

func TestSemesterChoices(t *testing.T) {
	l := FilterChoices(keyLabels{}, callback.FilterSemester, db.Semesters())

	require.Len(t, l.Items, 9)
	require.Equal(t, GridPlan{2, 2, 2, 2, 1}, l.Plan)
	require.Equal(t, l.Plan.Total(), len(l.Items))

	// В каждой паре сначала идёт второй элемент.
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterSemester), Value: callback.Int(2)}, l.Items[0].Token)
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterSemester), Value: callback.Int(1)}, l.Items[1].Token)
	require.Equal(t, "ترم 8", l.Items[6].Label)
	require.Equal(t, "ترم 7", l.Items[7].Label)

	back := l.Items[8]
	require.Equal(t, KeyBack, back.Label)
	require.Equal(t, callback.CoursesFilter{}, back.Token)
}

func TestCourseTypeChoices(t *testing.T) {
	l := FilterChoices(keyLabels{}, callback.FilterType, db.CourseTypes())
	require.Len(t, l.Items, 5)
	require.Equal(t, GridPlan{2, 2, 1}, l.Plan)
	require.Equal(t, "پایه", l.Items[0].Label)
	require.Equal(t, "عمومی", l.Items[1].Label)
}

func TestCourseList(t *testing.T) {
	courses := []db.Course{
		{ID: 10, FaTitle: "ریاضی ۱"},
		{ID: 11, FaTitle: "فیزیک ۱"},
		{ID: 12, FaTitle: "برنامه‌نویسی"},
	}
	l := CourseList(keyLabels{}, callback.FilterSemester, courses)

	require.Equal(t, []string{"فیزیک ۱", "ریاضی ۱", "برنامه‌نویسی", KeyBack}, labelsOf(l))
	require.Equal(t, GridPlan{2, 1, 1}, l.Plan)
	require.Equal(t, callback.CourseSelect{FilterBy: callback.FilterSemester, ID: 11}, l.Items[0].Token)
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterSemester)}, l.Items[3].Token)
}

func TestEmptyListsRenderOnlyBack(t *testing.T) {
	layouts := []Layout{
		CourseList(keyLabels{}, callback.FilterType, nil),
		PlaceList(keyLabels{}, nil),
		PlaceGroups(keyLabels{}, nil),
		Links(keyLabels{}, nil),
		FilterChoices(keyLabels{}, callback.FilterType, nil),
	}
	for _, l := range layouts {
		require.Len(t, l.Items, 1)
		require.Equal(t, KeyBack, l.Items[0].Label)
		require.Equal(t, GridPlan{1}, l.Plan)
	}
}

func TestCourseBack(t *testing.T) {
	l := CourseBack(keyLabels{}, callback.FilterType, callback.Int(3))
	require.Equal(t, GridPlan{1}, l.Plan)
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterType), Value: callback.Int(3)}, l.Items[0].Token)

	l = CourseBack(keyLabels{}, callback.FilterSemester, nil)
	require.Equal(t, callback.CoursesFilter{FilterBy: callback.Str(callback.FilterSemester)}, l.Items[0].Token)
}

func TestPlaceGroups(t *testing.T) {
	l := PlaceGroups(keyLabels{}, db.PlaceGroups())
	require.Len(t, l.Items, 8)
	// 7 групп: три пары, затем последняя группа и назад по одной в ряд.
	require.Equal(t, GridPlan{2, 2, 2, 1, 1}, l.Plan)
	require.Equal(t, callback.PlaceGroup{Group: int64(db.PlaceRestaurant)}, l.Items[0].Token)
	require.Equal(t, callback.PlaceGroup{Group: int64(db.PlaceOther)}, l.Items[6].Token)
	require.Equal(t, callback.MainMenu{}, l.Items[7].Token)
}

func TestPlaceList(t *testing.T) {
	places := []db.Place{
		{ID: 1, Name: "درب شمالی", Latitude: 35.7, Longitude: 51.4},
		{ID: 2, Name: "درب جنوبی", Latitude: 35.69, Longitude: 51.39},
	}
	l := PlaceList(keyLabels{}, places)
	require.Equal(t, []string{"درب جنوبی", "درب شمالی", KeyBack}, labelsOf(l))
	require.Equal(t, GridPlan{2, 1}, l.Plan)
	require.Equal(t, callback.PlaceLocation{Latitude: 35.7, Longitude: 51.4}, l.Items[1].Token)
	require.Equal(t, callback.PlaceMenu{}, l.Items[2].Token)
}

func TestInlineMarkup(t *testing.T) {
	l := CourseList(keyLabels{}, callback.FilterType, []db.Course{{ID: 1, FaTitle: "A"}, {ID: 2, FaTitle: "B"}, {ID: 3, FaTitle: "C"}})
	m, err := Markup(l)
	require.NoError(t, err)
	require.Len(t, m.InlineKeyboard, 3)
	require.Len(t, m.InlineKeyboard[0], 2)

	first := m.InlineKeyboard[0][0]
	require.Equal(t, "B", first.Text)
	require.Equal(t, callback.PrefixCourse, first.Unique)
	require.Equal(t, "type|2", first.Data)

	back := m.InlineKeyboard[2][0]
	require.Equal(t, callback.PrefixCourses, back.Unique)
	require.Equal(t, "type|", back.Data)
}

func TestLinksMarkup(t *testing.T) {
	links := []db.Link{{ID: 1, Name: "سامانه آموزش", Address: "https://edu.example.ac.ir"}}
	m, err := Markup(Links(keyLabels{}, links))
	require.NoError(t, err)
	require.Equal(t, "https://edu.example.ac.ir", m.InlineKeyboard[0][0].URL)
	require.Empty(t, m.InlineKeyboard[0][0].Unique)
	require.Equal(t, callback.PrefixMainMenu, m.InlineKeyboard[1][0].Unique)
}

func TestRender(t *testing.T) {
	buttons, plan, err := Render(PlaceGroups(keyLabels{}, db.PlaceGroups()[:2]))
	require.NoError(t, err)
	require.Equal(t, GridPlan{2, 1}, plan)
	require.Equal(t, []Button{
		{Label: db.PlaceGroups()[1].Label, Data: "place_group|2"},
		{Label: db.PlaceGroups()[0].Label, Data: "place_group|1"},
		{Label: KeyBack, Data: "main_menu"},
	}, buttons)
}

func TestMarkupErrors(t *testing.T) {
	_, err := Markup(Layout{Items: []Item{{Label: "x"}}, Plan: GridPlan{1}})
	require.ErrorIs(t, err, ErrNoAction)

	_, _, err = Render(Layout{Items: []Item{{Label: "x"}}, Plan: GridPlan{1}})
	require.ErrorIs(t, err, ErrNoAction)

	huge := Layout{
		Items: []Item{{Label: "x", Token: callback.Freshman{Mode: strings.Repeat("m", 100)}}},
		Plan:  GridPlan{1},
	}
	_, err = Markup(huge)
	require.ErrorIs(t, err, callback.ErrTokenTooLarge)

	_, err = Markup(Layout{Items: []Item{{Label: "x", Token: callback.MainMenu{}}}, Plan: GridPlan{2}})
	require.ErrorIs(t, err, ErrPlanMismatch)
}
