package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"gopkg.in/telebot.v3"

	"uni_bot_go/callback"
	"uni_bot_go/db"
	"uni_bot_go/keyboard"
	"uni_bot_go/texts"
)

// Store is the read side of the database used by the menus. *db.Queries
// satisfies it.
type Store interface {
	ListCoursesBySemester(ctx context.Context, offeringSemester int32) ([]db.Course, error)
	ListCoursesByType(ctx context.Context, courseType int32) ([]db.Course, error)
	GetCourse(ctx context.Context, id int64) (db.Course, error)
	ListCoursePrerequisites(ctx context.Context, courseID int64) ([]db.Course, error)
	ListPlacesByGroup(ctx context.Context, group int32) ([]db.Place, error)
	ListPhones(ctx context.Context) ([]db.Phone, error)
	ListLinks(ctx context.Context) ([]db.Link, error)
}

// Texts provides button captions and message texts.
type Texts interface {
	keyboard.Labels
	Text(key string) string
}

// Reply is what the bot should show next.
type Reply struct {
	Text     string
	Layout   *keyboard.Layout
	Location *callback.PlaceLocation
	// Alert is shown as a popup answer to the callback query.
	Alert string
}

// Controller decides the next menu for a pressed button or typed text.
type Controller struct {
	store Store
	texts Texts
}

func NewController(store Store, texts Texts) *Controller {
	return &Controller{store: store, texts: texts}
}

func (c *Controller) Start() Reply {
	return c.withLayout(texts.Start, keyboard.MainMenu(c.texts))
}

func (c *Controller) MainMenu() Reply {
	return c.withLayout(texts.Main, keyboard.MainMenu(c.texts))
}

// Unknown is the answer to a button this version cannot decode.
func (c *Controller) Unknown() Reply {
	r := c.MainMenu()
	r.Alert = c.texts.Text(texts.UnknownAction)
	return r
}

// OnText handles presses on the main reply keyboard.
func (c *Controller) OnText(ctx context.Context, text string) (Reply, error) {
	switch text {
	case c.texts.Button(keyboard.KeyFreshman):
		return c.freshman(false), nil
	case c.texts.Button(keyboard.KeyCourse):
		return c.withLayout(texts.Course, keyboard.CourseRoot(c.texts)), nil
	case c.texts.Button(keyboard.KeyPlace):
		return c.placeGroups(), nil
	case c.texts.Button(keyboard.KeyPhone):
		return c.phones(ctx)
	case c.texts.Button(keyboard.KeyLink):
		return c.links(ctx)
	case c.texts.Button(keyboard.KeyAbout):
		return Reply{Text: c.texts.Text(texts.About)}, nil
	default:
		return c.MainMenu(), nil
	}
}

// OnCallback decodes a routed callback and handles it. Malformed data is not
// an error: the user gets the main menu back.
func (c *Controller) OnCallback(ctx context.Context, cb *telebot.Callback) (Reply, error) {
	tok, err := callback.FromCallback(cb)
	if err != nil {
		return c.Unknown(), nil
	}
	return c.Handle(ctx, tok)
}

// Handle dispatches a decoded token.
func (c *Controller) Handle(ctx context.Context, tok callback.Token) (Reply, error) {
	switch t := tok.(type) {
	case callback.MainMenu:
		return c.MainMenu(), nil
	case callback.Freshman:
		return c.freshman(t.Mode == callback.ModeRegister), nil
	case callback.CoursesFilter:
		return c.courses(ctx, t)
	case callback.CourseSelect:
		return c.course(ctx, t)
	case callback.PlaceMenu:
		return c.placeGroups(), nil
	case callback.PlaceGroup:
		return c.places(ctx, t.Group)
	case callback.PlaceLocation:
		return Reply{Location: &t}, nil
	default:
		return c.Unknown(), nil
	}
}

func (c *Controller) withLayout(key string, l keyboard.Layout) Reply {
	return Reply{Text: c.texts.Text(key), Layout: &l}
}

func (c *Controller) freshman(register bool) Reply {
	if register {
		return c.withLayout(texts.FreshmanRegisterMsg, keyboard.Freshman(c.texts, true))
	}
	return c.withLayout(texts.Freshman, keyboard.Freshman(c.texts, false))
}

func (c *Controller) courses(ctx context.Context, t callback.CoursesFilter) (Reply, error) {
	if t.FilterBy == nil {
		return c.withLayout(texts.Course, keyboard.CourseRoot(c.texts)), nil
	}

	filter := *t.FilterBy
	if t.Value == nil {
		switch filter {
		case callback.FilterSemester:
			return c.withLayout(texts.CourseSemester, keyboard.FilterChoices(c.texts, filter, db.Semesters())), nil
		case callback.FilterType:
			return c.withLayout(texts.CourseType, keyboard.FilterChoices(c.texts, filter, db.CourseTypes())), nil
		default:
			return c.unknownFilter(), nil
		}
	}

	var (
		courses []db.Course
		err     error
	)
	if v, ok := toInt32(*t.Value); ok {
		switch filter {
		case callback.FilterSemester:
			courses, err = c.store.ListCoursesBySemester(ctx, v)
		case callback.FilterType:
			courses, err = c.store.ListCoursesByType(ctx, v)
		default:
			return c.unknownFilter(), nil
		}
		if err != nil {
			return Reply{}, fmt.Errorf("list courses by %s=%d: %w", filter, v, err)
		}
	}

	key := texts.CourseList
	if len(courses) == 0 {
		key = texts.CourseEmpty
	}
	return c.withLayout(key, keyboard.CourseList(c.texts, filter, courses)), nil
}

func (c *Controller) unknownFilter() Reply {
	r := c.withLayout(texts.Course, keyboard.CourseRoot(c.texts))
	r.Alert = c.texts.Text(texts.UnknownAction)
	return r
}

func (c *Controller) course(ctx context.Context, t callback.CourseSelect) (Reply, error) {
	course, err := c.store.GetCourse(ctx, t.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.withLayout(texts.CourseNotFound, keyboard.CourseBack(c.texts, t.FilterBy, nil)), nil
	}
	if err != nil {
		return Reply{}, fmt.Errorf("get course %d: %w", t.ID, err)
	}

	prerequisites, err := c.prerequisites(ctx, course)
	if err != nil {
		return Reply{}, err
	}

	var back *int64
	switch t.FilterBy {
	case callback.FilterSemester:
		if course.OfferingSemester.Valid {
			back = callback.Int(int64(course.OfferingSemester.Int32))
		}
	case callback.FilterType:
		back = callback.Int(int64(course.CourseType))
	}

	l := keyboard.CourseBack(c.texts, t.FilterBy, back)
	return Reply{Text: formatCourse(course, prerequisites), Layout: &l}, nil
}

// prerequisites merges the many-to-many list with the single foreign key.
func (c *Controller) prerequisites(ctx context.Context, course db.Course) ([]db.Course, error) {
	list, err := c.store.ListCoursePrerequisites(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("list prerequisites of %d: %w", course.ID, err)
	}
	if !course.PrerequisiteCourseID.Valid {
		return list, nil
	}

	id := course.PrerequisiteCourseID.Int64
	for _, p := range list {
		if p.ID == id {
			return list, nil
		}
	}
	p, err := c.store.GetCourse(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return list, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prerequisite %d: %w", id, err)
	}
	return append([]db.Course{p}, list...), nil
}

func (c *Controller) placeGroups() Reply {
	return c.withLayout(texts.Place, keyboard.PlaceGroups(c.texts, db.PlaceGroups()))
}

func (c *Controller) places(ctx context.Context, group int64) (Reply, error) {
	var places []db.Place
	if g, ok := toInt32(group); ok {
		var err error
		places, err = c.store.ListPlacesByGroup(ctx, g)
		if err != nil {
			return Reply{}, fmt.Errorf("list places of group %d: %w", g, err)
		}
	}

	key := texts.PlaceList
	if len(places) == 0 {
		key = texts.PlaceEmpty
	}
	return c.withLayout(key, keyboard.PlaceList(c.texts, places)), nil
}

func (c *Controller) phones(ctx context.Context) (Reply, error) {
	phones, err := c.store.ListPhones(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("list phones: %w", err)
	}
	if len(phones) == 0 {
		return Reply{Text: c.texts.Text(texts.PhoneEmpty)}, nil
	}
	return Reply{Text: formatPhones(c.texts.Text(texts.Phone), phones)}, nil
}

func (c *Controller) links(ctx context.Context) (Reply, error) {
	links, err := c.store.ListLinks(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("list links: %w", err)
	}
	return c.withLayout(texts.Link, keyboard.Links(c.texts, links)), nil
}

func toInt32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}
