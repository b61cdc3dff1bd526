package quizbank

import "github.com/abhisek/vidya/internal/adaptive"

// seedEntry groups the curated questions for one subject+grade.
type seedEntry struct {
	subject   string
	grade     string
	questions []Question
}

func init() {
	b = buildBank(seedQuestions())
}

func seedQuestions() []seedEntry {
	return []seedEntry{
		{subject: "Math", grade: "5th", questions: mathGrade5()},
		{subject: "Math", grade: "6th", questions: mathGrade6()},
		{subject: "Math", grade: "7th", questions: mathGrade7()},
		{subject: "Math", grade: "8th", questions: mathGrade8()},
		{subject: "Science", grade: "5th", questions: scienceGrade5()},
		{subject: "Science", grade: "6th", questions: scienceGrade6()},
		{subject: "Science", grade: "7th", questions: scienceGrade7()},
		{subject: "Science", grade: "8th", questions: scienceGrade8()},
		{subject: "Social Studies", grade: "5th", questions: socialGrade5()},
		{subject: "Social Studies", grade: "6th", questions: socialGrade6()},
		{subject: "Social Studies", grade: "7th", questions: socialGrade7()},
		{subject: "Social Studies", grade: "8th", questions: socialGrade8()},
		{subject: "English", grade: "5th", questions: englishGrade5()},
		{subject: "English", grade: "6th", questions: englishGrade6()},
		{subject: "English", grade: "7th", questions: englishGrade7()},
		{subject: "English", grade: "8th", questions: englishGrade8()},
	}
}

func mathGrade5() []Question {
	return []Question{
		{
			ID:            "math_5_1",
			Text:          "What is 15 + 27?",
			Options:       [OptionCount]string{"42", "41", "43", "40"},
			CorrectAnswer: 0,
			Explanation:   "15 + 27 = 42. Add the ones place: 5 + 7 = 12, write 2 carry 1. Add tens: 1 + 2 + 1 = 4.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Addition",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_5_2",
			Text:          "If a pizza has 8 slices and you eat 3, how many are left?",
			Options:       [OptionCount]string{"4", "5", "6", "7"},
			CorrectAnswer: 1,
			Explanation:   "8 - 3 = 5. When you subtract 3 from 8, you get 5 slices remaining.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Subtraction",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_5_3",
			Text:          "What is 7 × 6?",
			Options:       [OptionCount]string{"42", "36", "48", "35"},
			CorrectAnswer: 0,
			Explanation:   "7 × 6 = 42. You can think of it as 7 groups of 6 or 6 groups of 7.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Multiplication",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_5_4",
			Text:          "Which fraction is larger: 1/2 or 1/4?",
			Options:       [OptionCount]string{"1/2", "1/4", "They are equal", "Cannot determine"},
			CorrectAnswer: 0,
			Explanation:   "1/2 is larger than 1/4. Half of something is bigger than a quarter of the same thing.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Fractions",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_5_5",
			Text:          "How many sides does a triangle have?",
			Options:       [OptionCount]string{"2", "3", "4", "5"},
			CorrectAnswer: 1,
			Explanation:   "A triangle has 3 sides. That's why it's called a triangle - 'tri' means three.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Geometry",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_5_6",
			Text:          "What is 9 × 9?",
			Options:       [OptionCount]string{"72", "99", "81", "89"},
			CorrectAnswer: 2,
			Explanation:   "9 × 9 = 81. A handy check: 9 × 10 = 90, minus one 9 gives 81.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Multiplication",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_5_7",
			Text:          "A rope is 20 m long. You cut off 4 pieces of 3 m each. How much rope is left?",
			Options:       [OptionCount]string{"8 m", "12 m", "6 m", "10 m"},
			CorrectAnswer: 0,
			Explanation:   "4 pieces of 3 m use 12 m. 20 - 12 = 8 m of rope remains.",
			Difficulty:    adaptive.DifficultyHard,
			Topic:         "Subtraction",
			Type:          TypeMCQ,
		},
	}
}

func mathGrade6() []Question {
	return []Question{
		{
			ID:            "math_6_1",
			Text:          "What is 144 ÷ 12?",
			Options:       [OptionCount]string{"12", "11", "13", "10"},
			CorrectAnswer: 0,
			Explanation:   "144 ÷ 12 = 12. You can check: 12 × 12 = 144.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Division",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_6_2",
			Text:          "Convert 0.75 to a fraction:",
			Options:       [OptionCount]string{"3/4", "7/10", "75/100", "3/5"},
			CorrectAnswer: 0,
			Explanation:   "0.75 = 75/100 = 3/4 when simplified by dividing both by 25.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Decimals and Fractions",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_6_3",
			Text:          "What is the area of a rectangle with length 8 cm and width 5 cm?",
			Options:       [OptionCount]string{"40 sq cm", "13 sq cm", "26 sq cm", "35 sq cm"},
			CorrectAnswer: 0,
			Explanation:   "Area = length × width = 8 × 5 = 40 square centimeters.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Area and Perimeter",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_6_4",
			Text:          "What is 36 ÷ 4?",
			Options:       [OptionCount]string{"8", "9", "7", "6"},
			CorrectAnswer: 1,
			Explanation:   "36 ÷ 4 = 9 because 9 × 4 = 36.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Division",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_6_5",
			Text:          "The perimeter of a square is 36 cm. What is the length of one side?",
			Options:       [OptionCount]string{"6 cm", "12 cm", "9 cm", "18 cm"},
			CorrectAnswer: 2,
			Explanation:   "A square has 4 equal sides, so each side is 36 ÷ 4 = 9 cm.",
			Difficulty:    adaptive.DifficultyHard,
			Topic:         "Area and Perimeter",
			Type:          TypeMCQ,
		},
	}
}

func mathGrade7() []Question {
	return []Question{
		{
			ID:            "math_7_1",
			Text:          "Solve: 2x + 5 = 13",
			Options:       [OptionCount]string{"x = 4", "x = 3", "x = 5", "x = 6"},
			CorrectAnswer: 0,
			Explanation:   "2x + 5 = 13 → 2x = 13 - 5 → 2x = 8 → x = 4",
			Difficulty:    adaptive.DifficultyHard,
			Topic:         "Algebra",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_7_2",
			Text:          "What is 25% of 80?",
			Options:       [OptionCount]string{"20", "15", "25", "30"},
			CorrectAnswer: 0,
			Explanation:   "25% = 1/4, so 1/4 of 80 = 80 ÷ 4 = 20",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Percentages",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_7_3",
			Text:          "What is (-3) + 7?",
			Options:       [OptionCount]string{"-4", "4", "10", "-10"},
			CorrectAnswer: 1,
			Explanation:   "Starting at -3 and moving 7 to the right lands on 4.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Integers",
			Type:          TypeMCQ,
		},
	}
}

func mathGrade8() []Question {
	return []Question{
		{
			ID:            "math_8_1",
			Text:          "What is the square root of 144?",
			Options:       [OptionCount]string{"12", "11", "13", "14"},
			CorrectAnswer: 0,
			Explanation:   "√144 = 12 because 12 × 12 = 144",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Square Roots",
			Type:          TypeMCQ,
		},
		{
			ID:            "math_8_2",
			Text:          "In a right triangle, if one angle is 90° and another is 30°, what's the third angle?",
			Options:       [OptionCount]string{"60°", "70°", "50°", "45°"},
			CorrectAnswer: 0,
			Explanation:   "Angles in a triangle sum to 180°. So 180° - 90° - 30° = 60°",
			Difficulty:    adaptive.DifficultyHard,
			Topic:         "Triangles",
			Type:          TypeMCQ,
		},
	}
}

func scienceGrade5() []Question {
	return []Question{
		{
			ID:            "science_5_1",
			Text:          "What do plants need to make food?",
			Options:       [OptionCount]string{"Sunlight only", "Water only", "Sunlight, water, and air", "Soil only"},
			CorrectAnswer: 2,
			Explanation:   "Plants need sunlight, water, and carbon dioxide from air to make food through photosynthesis.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Plant Life",
			Type:          TypeMCQ,
		},
		{
			ID:            "science_5_2",
			Text:          "Which planet is closest to the Sun?",
			Options:       [OptionCount]string{"Venus", "Mercury", "Earth", "Mars"},
			CorrectAnswer: 1,
			Explanation:   "Mercury is the closest planet to the Sun in our solar system.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Solar System",
			Type:          TypeMCQ,
		},
		{
			ID:            "science_5_3",
			Text:          "What gas do we breathe in that our body needs?",
			Options:       [OptionCount]string{"Carbon dioxide", "Oxygen", "Nitrogen", "Helium"},
			CorrectAnswer: 1,
			Explanation:   "We breathe in oxygen, which our body needs for cellular respiration.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Human Body",
			Type:          TypeMCQ,
		},
	}
}

func scienceGrade6() []Question {
	return []Question{
		{
			ID:            "science_6_1",
			Text:          "What is the process by which water changes from liquid to gas?",
			Options:       [OptionCount]string{"Condensation", "Evaporation", "Precipitation", "Freezing"},
			CorrectAnswer: 1,
			Explanation:   "Evaporation is when water changes from liquid to gas due to heat.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Water Cycle",
			Type:          TypeMCQ,
		},
		{
			ID:            "science_6_2",
			Text:          "Which type of simple machine is a see-saw?",
			Options:       [OptionCount]string{"Pulley", "Lever", "Inclined plane", "Wheel and axle"},
			CorrectAnswer: 1,
			Explanation:   "A see-saw is a type of lever with a fulcrum in the middle.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Simple Machines",
			Type:          TypeMCQ,
		},
	}
}

func scienceGrade7() []Question {
	return []Question{
		{
			ID:            "science_7_1",
			Text:          "What is the basic unit of life?",
			Options:       [OptionCount]string{"Tissue", "Cell", "Organ", "Organism"},
			CorrectAnswer: 1,
			Explanation:   "The cell is the basic unit of life. All living things are made of cells.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Cell Biology",
			Type:          TypeMCQ,
		},
		{
			ID:            "science_7_2",
			Text:          "What happens to the speed of sound in warmer air?",
			Options:       [OptionCount]string{"It decreases", "It increases", "It stays the same", "It stops"},
			CorrectAnswer: 1,
			Explanation:   "Sound travels faster in warmer air because molecules move more quickly.",
			Difficulty:    adaptive.DifficultyHard,
			Topic:         "Sound",
			Type:          TypeMCQ,
		},
	}
}

func scienceGrade8() []Question {
	return []Question{
		{
			ID:            "science_8_1",
			Text:          "What is the chemical symbol for water?",
			Options:       [OptionCount]string{"H2O", "CO2", "NaCl", "O2"},
			CorrectAnswer: 0,
			Explanation:   "H2O represents water - 2 hydrogen atoms and 1 oxygen atom.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Chemistry",
			Type:          TypeMCQ,
		},
		{
			ID:            "science_8_2",
			Text:          "What force keeps planets in orbit around the Sun?",
			Options:       [OptionCount]string{"Magnetic force", "Gravity", "Electric force", "Nuclear force"},
			CorrectAnswer: 1,
			Explanation:   "Gravity is the force that keeps planets in orbit around the Sun.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Forces and Motion",
			Type:          TypeMCQ,
		},
	}
}

func socialGrade5() []Question {
	return []Question{
		{
			ID:            "social_5_1",
			Text:          "Who was the first President of India?",
			Options:       [OptionCount]string{"Mahatma Gandhi", "Dr. Rajendra Prasad", "Jawaharlal Nehru", "Dr. APJ Abdul Kalam"},
			CorrectAnswer: 1,
			Explanation:   "Dr. Rajendra Prasad was the first President of India from 1950 to 1962.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Indian History",
			Type:          TypeMCQ,
		},
	}
}

func socialGrade6() []Question {
	return []Question{
		{
			ID:            "social_6_1",
			Text:          "Which river is known as the 'Ganga of the South'?",
			Options:       [OptionCount]string{"Krishna", "Godavari", "Cauvery", "Narmada"},
			CorrectAnswer: 1,
			Explanation:   "The Godavari river is often called the 'Ganga of the South' due to its importance.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Geography",
			Type:          TypeMCQ,
		},
	}
}

func socialGrade7() []Question {
	return []Question{
		{
			ID:            "social_7_1",
			Text:          "In which year did India gain independence?",
			Options:       [OptionCount]string{"1946", "1947", "1948", "1949"},
			CorrectAnswer: 1,
			Explanation:   "India gained independence from British rule on August 15, 1947.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Freedom Struggle",
			Type:          TypeMCQ,
		},
	}
}

func socialGrade8() []Question {
	return []Question{
		{
			ID:            "social_8_1",
			Text:          "What is the capital of Karnataka?",
			Options:       [OptionCount]string{"Mumbai", "Chennai", "Bangalore", "Hyderabad"},
			CorrectAnswer: 2,
			Explanation:   "Bangalore (now Bengaluru) is the capital city of Karnataka state.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Indian States",
			Type:          TypeMCQ,
		},
	}
}

func englishGrade5() []Question {
	return []Question{
		{
			ID:            "english_5_1",
			Text:          "What is the plural of 'child'?",
			Options:       [OptionCount]string{"childs", "children", "childes", "child"},
			CorrectAnswer: 1,
			Explanation:   "The plural of 'child' is 'children'. It's an irregular plural form.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Grammar",
			Type:          TypeMCQ,
		},
	}
}

func englishGrade6() []Question {
	return []Question{
		{
			ID:            "english_6_1",
			Text:          "Which is a verb in this sentence: 'The dog runs fast'?",
			Options:       [OptionCount]string{"dog", "runs", "fast", "the"},
			CorrectAnswer: 1,
			Explanation:   "'Runs' is the verb as it shows the action the dog is performing.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Parts of Speech",
			Type:          TypeMCQ,
		},
	}
}

func englishGrade7() []Question {
	return []Question{
		{
			ID:            "english_7_1",
			Text:          "What type of word is 'quickly'?",
			Options:       [OptionCount]string{"noun", "verb", "adjective", "adverb"},
			CorrectAnswer: 3,
			Explanation:   "'Quickly' is an adverb because it describes how an action is performed.",
			Difficulty:    adaptive.DifficultyMedium,
			Topic:         "Adverbs",
			Type:          TypeMCQ,
		},
	}
}

func englishGrade8() []Question {
	return []Question{
		{
			ID:            "english_8_1",
			Text:          "Which word rhymes with 'cat'?",
			Options:       [OptionCount]string{"dog", "bat", "bird", "fish"},
			CorrectAnswer: 1,
			Explanation:   "'Bat' rhymes with 'cat' because they both end with the '-at' sound.",
			Difficulty:    adaptive.DifficultyEasy,
			Topic:         "Phonics",
			Type:          TypeMCQ,
		},
	}
}
