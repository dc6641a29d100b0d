package content

// DefaultBank returns the built-in card set covering the default concept
// catalog at three difficulty levels per concept.
func DefaultBank() *Bank {
	return NewBank([]item{
		{ConceptID: "place-value", Difficulty: 0.2, Prompt: "What digit is in the tens place of 374?", Answer: "7", ItemType: ItemNumeric},
		{ConceptID: "place-value", Difficulty: 0.5, Prompt: "What is the value of the 6 in 16,204?", Answer: "6000", ItemType: ItemNumeric},
		{ConceptID: "place-value", Difficulty: 0.8, Prompt: "Which number has a 5 in the thousands place?", Options: []string{"25,104", "52,104", "12,504", "12,045"}, Answer: "25,104", ItemType: ItemMultipleChoice},

		{ConceptID: "rounding", Difficulty: 0.2, Prompt: "Round 47 to the nearest ten.", Answer: "50", ItemType: ItemNumeric},
		{ConceptID: "rounding", Difficulty: 0.5, Prompt: "Round 3,481 to the nearest hundred.", Answer: "3500", ItemType: ItemNumeric},
		{ConceptID: "rounding", Difficulty: 0.8, Prompt: "Round 49,702 to the nearest thousand.", Answer: "50000", ItemType: ItemNumeric},

		{ConceptID: "addition", Difficulty: 0.2, Prompt: "What is 38 + 24?", Answer: "62", ItemType: ItemNumeric},
		{ConceptID: "addition", Difficulty: 0.5, Prompt: "What is 345 + 278?", Answer: "623", ItemType: ItemNumeric},
		{ConceptID: "addition", Difficulty: 0.8, Prompt: "What is 4,076 + 2,958?", Answer: "7034", ItemType: ItemNumeric},

		{ConceptID: "subtraction", Difficulty: 0.2, Prompt: "What is 52 - 17?", Answer: "35", ItemType: ItemNumeric},
		{ConceptID: "subtraction", Difficulty: 0.5, Prompt: "What is 703 - 258?", Answer: "445", ItemType: ItemNumeric},
		{ConceptID: "subtraction", Difficulty: 0.8, Prompt: "What is 6,000 - 2,473?", Answer: "3527", ItemType: ItemNumeric},

		{ConceptID: "multiplication", Difficulty: 0.2, Prompt: "What is 6 x 7?", Answer: "42", ItemType: ItemNumeric},
		{ConceptID: "multiplication", Difficulty: 0.5, Prompt: "What is 34 x 6?", Answer: "204", ItemType: ItemNumeric},
		{ConceptID: "multiplication", Difficulty: 0.8, Prompt: "What is 27 x 43?", Answer: "1161", ItemType: ItemNumeric},

		{ConceptID: "division", Difficulty: 0.2, Prompt: "What is 42 / 6?", Answer: "7", ItemType: ItemNumeric},
		{ConceptID: "division", Difficulty: 0.5, Prompt: "What is 144 / 12?", Answer: "12", ItemType: ItemNumeric},
		{ConceptID: "division", Difficulty: 0.8, Prompt: "What is 1,161 / 27?", Answer: "43", ItemType: ItemNumeric},

		{ConceptID: "fraction-basics", Difficulty: 0.2, Prompt: "What fraction of a pizza is one slice out of four equal slices?", Answer: "1/4", ItemType: ItemExact},
		{ConceptID: "fraction-basics", Difficulty: 0.5, Prompt: "Write 2/4 in lowest terms.", Answer: "1/2", ItemType: ItemExact},
		{ConceptID: "fraction-basics", Difficulty: 0.8, Prompt: "Which fraction equals 3/4?", Options: []string{"6/8", "4/3", "3/8", "1/4"}, Answer: "6/8", ItemType: ItemMultipleChoice},

		{ConceptID: "fraction-compare", Difficulty: 0.2, Prompt: "Which is larger: 1/2 or 1/4?", Options: []string{"1/2", "1/4"}, Answer: "1/2", ItemType: ItemMultipleChoice},
		{ConceptID: "fraction-compare", Difficulty: 0.5, Prompt: "Which is larger: 3/4 or 2/3?", Options: []string{"3/4", "2/3"}, Answer: "3/4", ItemType: ItemMultipleChoice},
		{ConceptID: "fraction-compare", Difficulty: 0.8, Prompt: "Which is smallest: 5/8, 2/3, or 7/12?", Options: []string{"5/8", "2/3", "7/12"}, Answer: "7/12", ItemType: ItemMultipleChoice},
	})
}
