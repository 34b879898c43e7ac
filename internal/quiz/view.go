package quiz

import "fmt"

// NoQuestionsNotice is shown when the API returns an empty quiz.
const NoQuestionsNotice = "No questions found."

// View is a render tree for one quiz round: questions with their current
// selections plus any result cards from prior submissions. It carries no
// platform rendering state, so building it is a pure function of its
// inputs and both the TUI and the plain CLI output consume it.
type View struct {
	Notice    string
	Questions []QuestionView
	Results   []Result
}

// QuestionView is one rendered question.
type QuestionView struct {
	ID          string
	Title       string // "N. <question>", 1-based
	Description string
	Options     []OptionView
}

// OptionView is one rendered choice.
type OptionView struct {
	Label    string
	Selected bool
}

// BuildView maps questions and the current selections to a render tree.
// Exactly one option per question can be marked selected; results are
// appended in submission order.
func BuildView(questions []Question, selections Selections, results []Result) View {
	if len(questions) == 0 {
		return View{Notice: NoQuestionsNotice, Results: results}
	}

	v := View{Questions: make([]QuestionView, 0, len(questions)), Results: results}
	for i, q := range questions {
		qv := QuestionView{
			ID:          q.ID,
			Title:       fmt.Sprintf("%d. %s", i+1, q.Question),
			Description: q.Description,
			Options:     make([]OptionView, 0, len(q.Options)),
		}
		sel, hasSel := selections[q.ID]
		for j, opt := range q.Options {
			qv.Options = append(qv.Options, OptionView{
				Label:    string(opt),
				Selected: hasSel && sel == j,
			})
		}
		v.Questions = append(v.Questions, qv)
	}
	return v
}
