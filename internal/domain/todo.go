package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TodoStatus is the lifecycle state of a todo. The wire form uses the
// Portuguese display names, matched exactly and case-sensitively.
type TodoStatus int

const (
	StatusPending TodoStatus = iota
	StatusInProgress
	StatusCompleted
)

// statusNames is the single source of truth for the status <-> string
// mapping; the reverse table is derived from it so parse and serialize
// can never drift apart.
var statusNames = map[TodoStatus]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em Andamento",
	StatusCompleted:  "Concluída",
}

var statusValues = func() map[string]TodoStatus {
	m := make(map[string]TodoStatus, len(statusNames))
	for s, name := range statusNames {
		m[name] = s
	}
	return m
}()

// AllowedStatusNames lists the accepted wire values in declaration order,
// for use in validation messages.
func AllowedStatusNames() string {
	names := make([]string, 0, len(statusNames))
	for s := StatusPending; s <= StatusCompleted; s++ {
		names = append(names, statusNames[s])
	}
	return strings.Join(names, ", ")
}

// ParseTodoStatus maps a wire string to its status. The match is exact:
// no trimming, no case folding.
func ParseTodoStatus(value string) (TodoStatus, error) {
	s, ok := statusValues[value]
	if !ok {
		return 0, fmt.Errorf("status inválido: %s", value)
	}
	return s, nil
}

func (s TodoStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TodoStatus(%d)", int(s))
}

func (s TodoStatus) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("status inválido: %d", int(s))
	}
	return json.Marshal(name)
}

func (s *TodoStatus) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseTodoStatus(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Date is a day-precision timestamp serialized as "2006-01-02".
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// Today returns the current date truncated to day precision.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to day precision in UTC.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}

// Todo is a unit of task work owned by exactly one user. The owner is
// fixed at creation; CreatedAt never changes after creation.
type Todo struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	CreatedAt   Date       `json:"createdAt" db:"created_at"`
	Status      TodoStatus `json:"status" db:"status"`
	UserID      int        `json:"userId" db:"user_id"`
}
