package revision

import (
	"fmt"
	"strings"
)

// maxRoadmapTopics caps how many syllabus topics a roadmap spreads across
// the month.
const maxRoadmapTopics = 8

// RoadmapInput gathers everything a personalized roadmap draws on.
type RoadmapInput struct {
	Subject string
	Grade   string
	Board   string

	// Topics is the syllabus topic list for the subject. Empty falls back
	// to a generic set per subject.
	Topics []string

	// WeakTopics are the student's lowest-scoring topics, worst first.
	WeakTopics []string

	Level        int
	TotalQuizzes int
	TotalCoins   int
	StreakDays   int
}

// experienceLevel buckets a student by how much they have done so far.
func experienceLevel(level, totalQuizzes int) (string, string) {
	switch {
	case totalQuizzes == 0:
		return "Beginner", "Building foundation"
	case totalQuizzes < 10:
		return "Learning", "Practicing basics"
	case level < 5:
		return "Intermediate", "Strengthening concepts"
	default:
		return "Advanced", "Mastering skills"
	}
}

var defaultRoadmapTopics = map[string][]string{
	"math":    {"Numbers and Operations", "Algebra Basics", "Geometry", "Measurement", "Data and Graphs"},
	"science": {"Living Things", "Matter and Energy", "Earth and Space", "Forces and Motion", "Environment"},
	"social":  {"History", "Geography", "Civics", "Economics", "Culture"},
	"english": {"Reading Comprehension", "Grammar", "Writing", "Speaking", "Literature"},
}

// BuildRoadmap renders a month-long learning roadmap as markdown. It is
// fully deterministic: same input, same roadmap.
func BuildRoadmap(in RoadmapInput) string {
	topics := dedupe(in.Topics)
	if len(topics) == 0 {
		topics = defaultRoadmapTopics[in.Subject]
		if len(topics) == 0 {
			topics = []string{"General Topics"}
		}
	}
	if len(topics) > maxRoadmapTopics {
		topics = topics[:maxRoadmapTopics]
	}

	level, focus := experienceLevel(in.Level, in.TotalQuizzes)

	var b strings.Builder
	fmt.Fprintf(&b, "# 🎯 **Your Personalized Learning Roadmap**\n")
	fmt.Fprintf(&b, "## %s - %s Grade (%s)\n\n---\n\n", in.Subject, in.Grade, in.Board)
	b.WriteString("### 👋 **Welcome, Young Scholar!**\n")
	fmt.Fprintf(&b, "You're at the **%s** level! Your current focus: **%s**\n\n", level, focus)
	b.WriteString("📊 **Your Progress So Far:**\n")
	fmt.Fprintf(&b, "- 🏆 Level: %d\n", in.Level)
	fmt.Fprintf(&b, "- 🎯 Quizzes Completed: %d\n", in.TotalQuizzes)
	fmt.Fprintf(&b, "- 🪙 Coins Earned: %d\n", in.TotalCoins)
	fmt.Fprintf(&b, "- 🔥 Study Streak: %d days\n", in.StreakDays)
	b.WriteString("\n---\n\n### 📚 **Learning Path for This Month**\n")

	perWeek := 1
	if len(topics) >= 4 {
		perWeek = len(topics) / 4
	}
	for i := 0; i < 4; i++ {
		start := i * perWeek
		end := start + perWeek
		if i == 3 {
			end = len(topics)
		}
		if start >= len(topics) {
			break
		}
		if end > len(topics) {
			end = len(topics)
		}

		fmt.Fprintf(&b, "\n#### 🗓️ **Week %d**\n**Focus Areas:**\n", i+1)
		for _, topic := range topics[start:end] {
			fmt.Fprintf(&b, "- 📖 %s\n", topic)
		}
		b.WriteString("\n**Weekly Goals:**\n")
		b.WriteString("- ✅ Complete 2-3 quizzes on these topics\n")
		b.WriteString("- 📺 Watch 1-2 educational videos\n")
		b.WriteString("- 💪 Practice for 20-30 minutes daily\n")
	}

	if len(in.WeakTopics) > 0 {
		b.WriteString("\n### 🎯 **Extra Practice Needed**\n")
		b.WriteString("Based on your quiz performance, focus more on:\n")
		for _, topic := range firstN(in.WeakTopics, 3) {
			fmt.Fprintf(&b, "- 🔄 %s (needs improvement)\n", topic)
		}
	}

	b.WriteString(`
### 📅 **Daily Learning Routine**

**🌅 Start Your Day:**
1. 📝 Review yesterday's learning (5 minutes)
2. 🎯 Set today's learning goal

**🎓 Study Time (20-30 minutes):**
1. 📖 Read/review concepts (10 minutes)
2. 📺 Watch educational video (5-10 minutes)
3. 🧠 Take practice quiz (5-10 minutes)

**🌙 End Your Day:**
1. ✨ Review what you learned
2. 🎉 Celebrate your progress!

---

### 🏆 **Motivation & Tips**

💡 **Study Tips:**
- 🍎 Take breaks every 20 minutes
- 🗣️ Explain concepts out loud
- ✍️ Take notes in your own words
- 🤝 Study with family or friends

🎮 **Gamification Goals:**
- 🎯 Complete daily quizzes to earn coins
- 🔥 Maintain your study streak
- 🏅 Unlock new achievements
- 🛍️ Buy cool perks in the shop

💪 **Remember:** Every expert was once a beginner. You're doing great! 🌟

---

*This roadmap is personalized based on your progress and will update as you learn more!*
`)

	return strings.TrimSpace(b.String())
}

func dedupe(topics []string) []string {
	seen := make(map[string]bool, len(topics))
	var out []string
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
