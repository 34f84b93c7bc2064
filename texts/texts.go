package texts

import (
	"context"
	"fmt"
	"sync"

	"uni_bot_go/db"
)

// Ключи текстов сообщений.
const (
	Start               = "START"
	Main                = "MAIN"
	Freshman            = "FRESHMAN"
	FreshmanRegisterMsg = "FRESHMAN_REGISTER_INFO"
	Course              = "COURSE"
	CourseSemester      = "COURSE_SEMESTER"
	CourseType          = "COURSE_TYPE"
	CourseList          = "COURSE_LIST"
	CourseEmpty         = "COURSE_EMPTY"
	CourseNotFound      = "COURSE_NOT_FOUND"
	Place               = "PLACE"
	PlaceList           = "PLACE_LIST"
	PlaceEmpty          = "PLACE_EMPTY"
	Phone               = "PHONE"
	PhoneEmpty          = "PHONE_EMPTY"
	Link                = "LINK"
	About               = "ABOUT"
	UnknownAction       = "UNKNOWN_ACTION"
)

// Source loads all text rows.
type Source interface {
	ListTexts(ctx context.Context) ([]db.Text, error)
}

// Store keeps the text table in memory. Missing keys resolve to the key itself
// so that a fresh database still renders every button.
type Store struct {
	mu      sync.RWMutex
	buttons map[string]string
	texts   map[string]string
}

func NewStore() *Store {
	return &Store{
		buttons: make(map[string]string),
		texts:   make(map[string]string),
	}
}

// Load replaces the contents with what src returns. On error the previous
// contents stay.
func (s *Store) Load(ctx context.Context, src Source) (int, error) {
	rows, err := src.ListTexts(ctx)
	if err != nil {
		return 0, fmt.Errorf("load texts: %w", err)
	}

	buttons := make(map[string]string)
	texts := make(map[string]string)
	for _, r := range rows {
		if r.IsButton {
			buttons[r.Name] = r.Text
		} else {
			texts[r.Name] = r.Text
		}
	}

	s.mu.Lock()
	s.buttons = buttons
	s.texts = texts
	s.mu.Unlock()
	return len(rows), nil
}

// Button returns a button caption.
func (s *Store) Button(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.buttons[key]; ok {
		return v
	}
	return key
}

// Text returns a message text.
func (s *Store) Text(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.texts[key]; ok {
		return v
	}
	return key
}

// Set overrides one entry; used for defaults and in tests.
func (s *Store) Set(key, value string, isButton bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if isButton {
		s.buttons[key] = value
	} else {
		s.texts[key] = value
	}
}
