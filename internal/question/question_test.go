package question

import "testing"

func TestOperationApply(t *testing.T) {
	tests := []struct {
		op     Operation
		a, b   int
		want   int
		wantOK bool
	}{
		{Addition, 3, 4, 7, true},
		{Addition, 0, 0, 0, true},
		{Subtraction, 9, 4, 5, true},
		{Subtraction, 4, 9, 0, false},
		{Multiplication, 6, 7, 42, true},
		{Division, 12, 3, 4, true},
		{Division, 7, 2, 0, false},
		{Division, 5, 0, 0, false},
		{Operation("modulo"), 5, 2, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.op.Apply(tt.a, tt.b)
		if ok != tt.wantOK {
			t.Errorf("%s.Apply(%d, %d) ok = %v, want %v", tt.op, tt.a, tt.b, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("%s.Apply(%d, %d) = %d, want %d", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestOperationSymbol(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{Addition, "+"},
		{Subtraction, "-"},
		{Multiplication, "×"},
		{Division, "÷"},
	}

	for _, tt := range tests {
		if got := tt.op.Symbol(); got != tt.want {
			t.Errorf("%s.Symbol() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestLevelMaxNumber(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Level1, 10},
		{Level2, 20},
		{Level3, 100},
	}

	for _, tt := range tests {
		if got := tt.level.MaxNumber(); got != tt.want {
			t.Errorf("Level(%d).MaxNumber() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestQuestionKey(t *testing.T) {
	q := &Question{Num1: 3, Num2: 4, Op: Addition, Answer: 7}
	if got := q.Key(); got != "3_+_4" {
		t.Errorf("Key() = %q, want %q", got, "3_+_4")
	}
}

func TestQuestionCheck(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid addition", Question{Num1: 3, Num2: 4, Op: Addition, Answer: 7}, false},
		{"valid division", Question{Num1: 12, Num2: 3, Op: Division, Answer: 4}, false},
		{"wrong answer", Question{Num1: 3, Num2: 4, Op: Addition, Answer: 8}, true},
		{"inexact division", Question{Num1: 7, Num2: 2, Op: Division, Answer: 3}, true},
		{"zero operand", Question{Num1: 0, Num2: 4, Op: Addition, Answer: 4}, true},
		{"negative answer", Question{Num1: 3, Num2: 4, Op: Subtraction, Answer: -1}, true},
	}

	for _, tt := range tests {
		err := tt.q.Check()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Check() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestFallbackQuestionsAreValid(t *testing.T) {
	for _, op := range Operations() {
		q := Fallback(op)
		if err := q.Check(); err != nil {
			t.Errorf("Fallback(%s) is invalid: %v", op, err)
		}
		if q.Op != op {
			t.Errorf("Fallback(%s).Op = %s", op, q.Op)
		}
	}
}
