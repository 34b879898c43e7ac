package quiz

import (
	"encoding/json"
	"strconv"
)

// Question is one multiple-choice question as served by the quiz API.
// Option order is significant and preserved as received.
type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Description string   `json:"description,omitempty"`
	Options     []Option `json:"options"`
	Correct     int      `json:"correct"`
}

// Option is a displayed choice label. The API serves options either as
// strings or as bare numbers (year quizzes), so decoding accepts both
// and keeps the literal text form.
type Option string

func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Option(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*o = Option(n.String())
	return nil
}

// Response is the quiz API payload for one round of questions.
type Response struct {
	Count     int        `json:"count"`
	Questions []Question `json:"questions"`
}

// Selections maps a question ID to the index of the chosen option.
// Absent entries mean no selection.
type Selections map[string]int

// Result is the outcome of grading one submission.
type Result struct {
	Score int
	Total int
	// Marks holds per-question correctness, aligned with the graded
	// question order.
	Marks []bool
}

// Grade scores a set of selections against the questions' answer keys.
// A question scores when its selected option's literal text, parsed as
// an integer, equals the question's correct value. Questions with no
// selection, an out-of-range selection, or a non-numeric option label
// score zero.
func Grade(questions []Question, selections Selections) Result {
	res := Result{Total: len(questions), Marks: make([]bool, len(questions))}
	for i, q := range questions {
		idx, ok := selections[q.ID]
		if !ok || idx < 0 || idx >= len(q.Options) {
			continue
		}
		v, err := strconv.Atoi(string(q.Options[idx]))
		if err != nil {
			continue
		}
		if v == q.Correct {
			res.Marks[i] = true
			res.Score++
		}
	}
	return res
}
