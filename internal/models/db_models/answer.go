package db_models

import (
	"encoding/json"
	"errors"
	"time"
)

// AnswerValue is the polymorphic response value: a single string for
// TEXT/CHOICE questions or a list of strings for MULTICHOICE. On the
// wire it serializes as a bare string or an array of strings.
type AnswerValue struct {
	single string
	multi  []string
	isList bool
}

func TextValue(s string) AnswerValue {
	return AnswerValue{single: s}
}

func MultiValue(values []string) AnswerValue {
	return AnswerValue{multi: values, isList: true}
}

func (v AnswerValue) IsList() bool { return v.isList }

func (v AnswerValue) Single() string { return v.single }

func (v AnswerValue) List() []string { return v.multi }

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.multi)
	}
	return json.Marshal(v.single)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextValue(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = MultiValue(list)
		return nil
	}
	return errors.New("response value must be a string or a list of strings")
}

// Answer is a single recorded response to one question.
type Answer struct {
	Value      AnswerValue `json:"value"`
	AnsweredAt time.Time   `json:"answeredAt"`
}

// ResponseMap maps category id -> question key -> answer. It is stored
// on the profile as one JSON document and always replaced wholesale.
type ResponseMap map[string]map[string]Answer
