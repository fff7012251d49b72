package question

import "fmt"

// Story templates restate the bare arithmetic as a small scene. Four
// per operation; one is picked uniformly at random per question.

var additionStories = []string{
	"You buy %d apples and then %d more. How many apples in total?",
	"Maya has %d toys and her friend gives her %d more. How many now?",
	"A basket holds %d oranges and %d more are added. How many altogether?",
	"There are %d cars in the lot and %d more drive in. How many cars now?",
}

var subtractionStories = []string{
	"You have %d cookies and share %d with a friend. How many are left?",
	"There are %d birds in a tree and %d fly away. How many remain?",
	"Sam has %d coins and spends %d. How many coins are left?",
	"A box holds %d balls and %d are taken out. How many are still inside?",
}

var multiplicationStories = []string{
	"You plant %d rows of flowers with %d in each row. How many flowers?",
	"There are %d boxes with %d apples in each. How many apples in total?",
	"A hall has %d rows of %d seats. How many seats altogether?",
	"Lily reads %[2]d pages a day for %[1]d days. How many pages in total?",
}

var divisionStories = []string{
	"%d slices of cake are shared equally among %d friends. How many each?",
	"%d apples are packed evenly into %d boxes. How many per box?",
	"%d books are placed evenly on %d shelves. How many per shelf?",
	"%d sweets are split equally among %d kids. How many does each get?",
}

func (g *Generator) story(op Operation, num1, num2 int) string {
	var pool []string
	switch op {
	case Subtraction:
		pool = subtractionStories
	case Multiplication:
		pool = multiplicationStories
	case Division:
		pool = divisionStories
	default:
		pool = additionStories
	}
	return fmt.Sprintf(pool[g.rng.IntN(len(pool))], num1, num2)
}
