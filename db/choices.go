package db

import "fmt"

// Choice is one value of an enumerated column with its display label.
type Choice struct {
	Value int64
	Label string
}

const (
	UnitTheoretical int32 = 1
	UnitPractical   int32 = 2
)

const (
	CourseGeneral      int32 = 1
	CourseFoundational int32 = 2
	CourseMandatory    int32 = 3
	CourseOptional     int32 = 4
)

const (
	PlaceGate int32 = iota + 1
	PlaceRestaurant
	PlaceDormitory
	PlaceFaculty
	PlaceBank
	PlaceOfficeBuilding
	PlaceOther
)

const (
	MinSemester = 1
	MaxSemester = 8
)

var unitTypes = []Choice{
	{Value: int64(UnitTheoretical), Label: "نظری"},
	{Value: int64(UnitPractical), Label: "عملی"},
}

var courseTypes = []Choice{
	{Value: int64(CourseGeneral), Label: "عمومی"},
	{Value: int64(CourseFoundational), Label: "پایه"},
	{Value: int64(CourseMandatory), Label: "اصلی"},
	{Value: int64(CourseOptional), Label: "اختیاری"},
}

var placeGroups = []Choice{
	{Value: int64(PlaceGate), Label: "🚪 درب‌های ورودی"},
	{Value: int64(PlaceRestaurant), Label: "🍕 غذاخوری‌ها"},
	{Value: int64(PlaceDormitory), Label: "🛏 خوابگاه‌ها"},
	{Value: int64(PlaceFaculty), Label: "📚 دانشکده‌ها"},
	{Value: int64(PlaceBank), Label: "🏦 بانک‌ها"},
	{Value: int64(PlaceOfficeBuilding), Label: "🏢 ساختمان‌های اداری"},
	{Value: int64(PlaceOther), Label: "🛟 مکان‌های رفاهی و تفریحی"},
}

// Возвращаем копии, чтобы вызывающий код не мог испортить таблицы.

func UnitTypes() []Choice   { return append([]Choice(nil), unitTypes...) }
func CourseTypes() []Choice { return append([]Choice(nil), courseTypes...) }
func PlaceGroups() []Choice { return append([]Choice(nil), placeGroups...) }

// Semesters lists semesters 1..8 labelled for buttons.
func Semesters() []Choice {
	out := make([]Choice, 0, MaxSemester-MinSemester+1)
	for s := MinSemester; s <= MaxSemester; s++ {
		out = append(out, Choice{Value: int64(s), Label: fmt.Sprintf("ترم %d", s)})
	}
	return out
}

// ChoiceLabel finds the label of v, or "" when v is not in choices.
func ChoiceLabel(choices []Choice, v int64) string {
	for _, c := range choices {
		if c.Value == v {
			return c.Label
		}
	}
	return ""
}
