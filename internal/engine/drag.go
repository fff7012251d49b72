package engine

import "github.com/rohanverma/arithmo/internal/question"

// ValidateDragAnswer computes the answer implied by a drag-and-drop
// arrangement and feeds it through the same correctness path as typed
// answers. The item values themselves don't matter to the engine; the
// scene layer has already grouped them, only the count carries meaning
// here.
func (e *Engine) ValidateDragAnswer(draggedItems []string, op question.Operation) Result {
	if draggedItems == nil {
		return Result{
			Streak:   e.streak,
			Error:    ErrInvalidDrag,
			Feedback: "Drag data is invalid",
			Progress: e.Progress(),
		}
	}

	if !op.Valid() {
		return Result{
			Streak:   e.streak,
			Error:    ErrUnknownOp,
			Feedback: "Unknown operation",
			Progress: e.Progress(),
		}
	}

	q := e.CurrentQuestion()
	if q == nil {
		return Result{
			Streak:   e.streak,
			Error:    ErrNoQuestion,
			Feedback: "No question to answer",
			Progress: e.Progress(),
		}
	}

	var answer int
	switch op {
	case question.Addition:
		answer = len(draggedItems)
	case question.Subtraction:
		answer = q.Num1 - len(draggedItems)
	case question.Multiplication:
		// Row/column placement is checked scene-side; the engine sees
		// the flat count.
		answer = len(draggedItems)
	case question.Division:
		if len(draggedItems) == 0 {
			answer = 0
		} else {
			answer = q.Num1 / q.Num2
		}
	}

	return e.checkAnswer(answer, "")
}
