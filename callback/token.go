package callback

// Префиксы callback-данных. Совпадают с Unique у telebot.InlineButton,
// поэтому допустимы только символы [-\w].
const (
	PrefixMainMenu      = "main_menu"
	PrefixFreshman      = "freshman"
	PrefixCourses       = "courses"
	PrefixCourse        = "course"
	PrefixPlace         = "place"
	PrefixPlaceGroup    = "place_group"
	PrefixPlaceLocation = "place_loc"
)

// Значения измерения фильтра курсов.
const (
	FilterSemester = "semester"
	FilterType     = "type"
)

// Режимы меню первокурсника.
const (
	ModeRegister = "register"
	ModeMenu     = "menu"
)

// Token is a decoded inline button press. The set of variants is closed:
// every implementation lives in this package and has an entry in decoders.
type Token interface {
	Prefix() string
	writeFields(w *writer)
}

// MainMenu returns the user to the main reply keyboard.
type MainMenu struct{}

// Freshman opens the freshman section in the given mode.
type Freshman struct {
	Mode string
}

// CoursesFilter navigates the course catalogue. With no FilterBy it opens the
// filter selection; with FilterBy and no Value it lists the filter choices;
// with both it lists matching courses.
type CoursesFilter struct {
	FilterBy *string
	Value    *int64
}

// CourseSelect opens a single course reached through FilterBy.
type CourseSelect struct {
	FilterBy string
	ID       int64
}

// PlaceMenu opens the list of place groups.
type PlaceMenu struct{}

// PlaceGroup lists the places of one group.
type PlaceGroup struct {
	Group int64
}

// PlaceLocation asks for the geolocation of a place.
type PlaceLocation struct {
	Latitude  float64
	Longitude float64
}

func (MainMenu) Prefix() string      { return PrefixMainMenu }
func (Freshman) Prefix() string      { return PrefixFreshman }
func (CoursesFilter) Prefix() string { return PrefixCourses }
func (CourseSelect) Prefix() string  { return PrefixCourse }
func (PlaceMenu) Prefix() string     { return PrefixPlace }
func (PlaceGroup) Prefix() string    { return PrefixPlaceGroup }
func (PlaceLocation) Prefix() string { return PrefixPlaceLocation }

func (MainMenu) writeFields(*writer) {}

func (t Freshman) writeFields(w *writer) {
	w.String(t.Mode)
}

func (t CoursesFilter) writeFields(w *writer) {
	w.OptString(t.FilterBy)
	w.OptInt(t.Value)
}

func (t CourseSelect) writeFields(w *writer) {
	w.String(t.FilterBy)
	w.Int(t.ID)
}

func (PlaceMenu) writeFields(*writer) {}

func (t PlaceGroup) writeFields(w *writer) {
	w.Int(t.Group)
}

func (t PlaceLocation) writeFields(w *writer) {
	w.Float(t.Latitude)
	w.Float(t.Longitude)
}

// decoders is the serialization table: field order here must mirror writeFields.
var decoders = map[string]func(r *reader) Token{
	PrefixMainMenu: func(*reader) Token { return MainMenu{} },
	PrefixFreshman: func(r *reader) Token {
		return Freshman{Mode: r.String()}
	},
	PrefixCourses: func(r *reader) Token {
		filterBy := r.OptString()
		value := r.OptInt()
		return CoursesFilter{FilterBy: filterBy, Value: value}
	},
	PrefixCourse: func(r *reader) Token {
		filterBy := r.String()
		id := r.Int()
		return CourseSelect{FilterBy: filterBy, ID: id}
	},
	PrefixPlace: func(*reader) Token { return PlaceMenu{} },
	PrefixPlaceGroup: func(r *reader) Token {
		return PlaceGroup{Group: r.Int()}
	},
	PrefixPlaceLocation: func(r *reader) Token {
		lat := r.Float()
		lon := r.Float()
		return PlaceLocation{Latitude: lat, Longitude: lon}
	},
}

// Prefixes returns every known prefix, for handler registration.
func Prefixes() []string {
	return []string{
		PrefixMainMenu,
		PrefixFreshman,
		PrefixCourses,
		PrefixCourse,
		PrefixPlace,
		PrefixPlaceGroup,
		PrefixPlaceLocation,
	}
}

// Str and Int build optional field values.
func Str(s string) *string { return &s }
func Int(v int64) *int64   { return &v }
