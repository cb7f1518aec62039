package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Story представляет историю путешествия. Владелец (UserID) задаётся только
// из идентичности аутентифицированного пользователя и после создания не меняется.
type Story struct {
	ID              string    `json:"id" bson:"_id"`
	Title           string    `json:"title" bson:"title"`
	Story           string    `json:"story" bson:"story"`
	VisitedLocation string    `json:"visitedLocation" bson:"visitedLocation"`
	IsFavourite     bool      `json:"isFavourite" bson:"isFavourite"`
	UserID          string    `json:"userId" bson:"userId"`
	ImageURL        string    `json:"imageUrl" bson:"imageUrl"`
	VisitedDate     time.Time `json:"visitedDate" bson:"visitedDate"`
	CreatedOn       time.Time `json:"createdOn" bson:"createdOn"`
}

// StoryInput - поля истории, которые может прислать клиент.
type StoryInput struct {
	Title           string
	Story           string
	VisitedLocation string
	ImageURL        string
	VisitedDate     VisitedDate
}

// VisitedDate - дата посещения в миллисекундах Unix.
// В JSON принимается как число, так и строка.
type VisitedDate string

// UnmarshalJSON принимает 1700000000000 и "1700000000000".
func (d *VisitedDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = VisitedDate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = VisitedDate(n.String())
	return nil
}

// Time переводит миллисекунды в time.Time (UTC).
func (d VisitedDate) Time() (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(string(d)), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
