package dataset

import "strings"

// keywordEntry is one curated keyword-to-answer mapping. Declaration order is
// significant: earlier entries win ties.
type keywordEntry struct {
	Keyword string
	Answer  string
}

// keywordTable maps phrases and single words to canned counsellor answers.
// Multi-word keywords are more specific and are checked before single words.
var keywordTable = []keywordEntry{
	{"study habit", studyHabitsAnswer},
	{"improve study", studyHabitsAnswer},
	{"better study", studyHabitsAnswer},
	{"study technique", studyHabitsAnswer},
	{"study", "Consider your interests and career goals. Popular fields include STEM, Business, Healthcare, and Creative Arts. What subjects do you enjoy most?"},
	{"career", "I can help you explore career options. Tell me about your skills, interests, and what you enjoy doing. What kind of work environment do you prefer?"},
	{"stress", "Student stress is common. Try time management techniques, take regular breaks, exercise, talk to someone you trust, and remember to prioritize self-care."},
	{"programming", "For beginners: Python is excellent. Web development: JavaScript. Mobile apps: Swift/Kotlin. Data science: Python/R. Choose based on your goals!"},
	{"grades", "Improve grades with consistent study habits, class attendance, seeking help when needed, and active learning techniques. Don't forget sleep and exercise!"},
	{"future", "Think about what you enjoy, your strengths, and career opportunities. Many students explore multiple paths before finding their perfect fit."},
	{"job", "Consider internships, networking, building a portfolio, and developing both technical and soft skills. Research companies that align with your values."},
	{"motivation", "Set clear goals, break tasks into manageable steps, reward your progress, and remember why you started. Find what inspires you!"},
	{"college", "College provides education and networking, but also consider trade schools, online courses, or bootcamps based on your goals and learning style."},
	{"time management", "Use planners, prioritize tasks, break them into smaller steps, eliminate distractions, and schedule regular breaks. Pomodoro technique can help!"},
	{"exam", "Prepare with a study plan, practice past papers, get enough sleep, eat well, and use relaxation techniques to manage stress. You've got this!"},
	{"stressed", "Take deep breaths, break tasks into smaller steps, talk to someone, exercise, and remember to take breaks. You're not alone in feeling this way."},
	{"career choice", "Consider your passions, skills, values, and job market demand. Research different fields and talk to professionals in those areas."},
	{"major", "Choose a major based on your interests, career goals, and the job market. Many successful people work in fields different from their major!"},
	{"overwhelmed", "Break tasks into smaller steps, prioritize what's important, ask for help, and remember progress over perfection. You can handle this!"},
	{"resume", "Focus on achievements with metrics, use action verbs, tailor to each job, and include relevant keywords. Keep it clean and professional."},
	{"interview", "Research the company, practice common questions, prepare specific examples, and remember to ask thoughtful questions about the role."},
	{"skill", "Focus on both technical skills (programming, data analysis) and soft skills (communication, teamwork). Continuous learning is key!"},
}

// Match finds the best dataset answer for a user query. Tiers are tried in
// strict order and the first hit wins: exact match, corpus question contained
// in the query, word overlap of at least two tokens, then the curated
// keyword table (phrases before single words). The boolean is false when no
// tier matched; an empty query never matches.
func Match(query string, pairs []Entry) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	// Exact match
	for _, qa := range pairs {
		if qa.Question == q {
			return qa.Answer, true
		}
	}

	// Dataset question contained in the user question
	for _, qa := range pairs {
		if strings.Contains(q, qa.Question) {
			return qa.Answer, true
		}
	}

	// Word overlap: at least two common tokens, first qualifying entry wins
	queryWords := wordSet(q)
	for _, qa := range pairs {
		common := 0
		for word := range wordSet(qa.Question) {
			if queryWords[word] {
				common++
			}
		}
		if common >= 2 {
			return qa.Answer, true
		}
	}

	// Multi-word keywords first: more specific
	for _, entry := range keywordTable {
		if strings.Contains(entry.Keyword, " ") && strings.Contains(q, entry.Keyword) {
			return entry.Answer, true
		}
	}

	// Then single-word keywords against each query token
	for _, word := range strings.Fields(q) {
		for _, entry := range keywordTable {
			if !strings.Contains(entry.Keyword, " ") && entry.Keyword == word {
				return entry.Answer, true
			}
		}
	}

	return "", false
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(s) {
		set[word] = true
	}
	return set
}
