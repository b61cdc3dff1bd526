package retrieval

import "fmt"

// syllabusTemplates holds the built-in syllabus outline per subject. The
// %s placeholders are board and grade, in that order.
var syllabusTemplates = map[string]string{
	"math": `%s - %s Grade Mathematics Syllabus

Chapter 1: Number Systems
- Understanding large numbers
- Place value and face value
- Comparing and ordering numbers
- Rounding off numbers

Chapter 2: Basic Operations
- Addition and subtraction
- Multiplication and division
- BODMAS rule
- Word problems

Chapter 3: Fractions
- Understanding fractions
- Proper and improper fractions
- Mixed numbers
- Addition and subtraction of fractions

Chapter 4: Decimals
- Introduction to decimals
- Place value in decimals
- Comparing decimals
- Operations with decimals

Chapter 5: Geometry
- Lines, angles, and shapes
- Triangles and quadrilaterals
- Perimeter and area
- Basic constructions

Chapter 6: Measurement
- Length, weight, and capacity
- Time and calendar
- Money and transactions
- Data handling`,

	"science": `%s - %s Grade Science Syllabus

Unit 1: Living World
- Plants and their parts
- Animal kingdom
- Food and nutrition
- Health and hygiene

Unit 2: Physical World
- Matter and its states
- Light and sound
- Motion and force
- Simple machines

Unit 3: Natural Phenomena
- Weather and climate
- Water cycle
- Rocks and minerals
- Solar system

Unit 4: Environmental Studies
- Pollution and conservation
- Natural resources
- Ecosystem and food chains
- Sustainable development`,

	"social": `%s - %s Grade Social Studies Syllabus

Part A: History
- Ancient civilizations
- Medieval period
- Freedom struggle
- Important personalities

Part B: Geography
- Earth and its features
- Climate and weather
- Natural resources
- Maps and globes

Part C: Civics
- Our government
- Rights and duties
- Local administration
- National symbols

Part D: Economics
- Needs and wants
- Money and banking
- Agriculture and industry
- Trade and commerce`,

	"english": `%s - %s Grade English Syllabus

Unit 1: Reading Comprehension
- Understanding passages
- Finding main ideas
- Making inferences
- Vocabulary in context

Unit 2: Grammar
- Parts of speech
- Tenses and their usage
- Sentence structure
- Punctuation rules

Unit 3: Writing
- Paragraph writing
- Letter writing
- Essay writing
- Creative writing

Unit 4: Literature
- Poems and their meanings
- Short stories
- Character analysis
- Moral lessons`,
}

// renderSyllabus fills a subject template for a board and grade.
func renderSyllabus(board, grade, subject string) string {
	tmpl, ok := syllabusTemplates[subject]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tmpl, board, grade)
}
