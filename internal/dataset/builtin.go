package dataset

const studyHabitsAnswer = "Create a study schedule, find a quiet space, take regular breaks, use active learning techniques like summarizing and teaching others, stay organized, and eliminate distractions. Try the Pomodoro technique: 25 minutes focused study, 5-minute break."

// FallbackPairs is the built-in counsellor corpus used whenever the CSV
// dataset cannot be loaded.
func FallbackPairs() []Entry {
	return []Entry{
		{Question: "what should i study", Answer: "Consider your interests, strengths, and career goals. Popular fields include Computer Science, Business, Healthcare, and Engineering. Think about what subjects you enjoy and what career opportunities interest you."},
		{Question: "career guidance", Answer: "I can help you explore career options based on your skills and interests. Tell me about your strengths, what you enjoy doing, and what kind of work environment you prefer."},
		{Question: "i feel stressed", Answer: "Student stress is common. Try breaking tasks into smaller steps, practice time management, make sure to take breaks, exercise regularly, and talk to someone you trust. Remember to prioritize self-care."},
		{Question: "which programming language should i learn", Answer: "For beginners: Python is great for its simplicity. For web development: JavaScript. For mobile apps: Swift (iOS) or Kotlin (Android). For systems programming: C++ or Rust. Choose based on your goals!"},
		{Question: "how to improve grades", Answer: "Develop consistent study habits, attend all classes, seek help when needed, form study groups, practice active learning techniques, and make sure to get enough sleep and exercise."},
		{Question: "how to improve my study habits", Answer: studyHabitsAnswer},
		{Question: "improve study habits", Answer: studyHabitsAnswer},
		{Question: "better study habits", Answer: studyHabitsAnswer},
		{Question: "study habits", Answer: studyHabitsAnswer},
		{Question: "i'm feeling stressed about exams", Answer: "Exam stress is normal. Try breaking your study material into manageable chunks, practice relaxation techniques like deep breathing, get enough sleep, eat well, and remember to take regular breaks. You can do this!"},
		{Question: "what career should i choose", Answer: "Consider your interests, skills, and values. Think about what activities you enjoy, what you're good at, and what kind of work environment you prefer. Research different careers and talk to people in those fields."},
		{Question: "how to manage time better", Answer: "Use a planner or digital calendar, prioritize tasks using the Eisenhower Matrix, break large tasks into smaller steps, eliminate distractions, set specific time blocks, and learn to say no to non-essential activities."},
		{Question: "i need motivation", Answer: "Set clear, achievable goals. Break them into small steps and celebrate your progress. Find your \"why\" - remember why this is important to you. Create a routine, find an accountability partner, and track your progress."},
		{Question: "should i go to college", Answer: "College provides education and networking opportunities, but also consider trade schools, online courses, or bootcamps based on your career goals. Think about your learning style and financial situation."},
		{Question: "how to choose a major", Answer: "Consider your interests, career goals, job market demand, and earning potential. Talk to academic advisors, professionals in the field, and current students. Remember many people change careers multiple times."},
		{Question: "i feel overwhelmed", Answer: "It's okay to feel overwhelmed. Break things down into smaller tasks, prioritize what's most important, ask for help when needed, and remember to take care of your basic needs like sleep and nutrition."},
		{Question: "how to prepare for interviews", Answer: "Research the company, practice common questions, prepare examples of your achievements, dress appropriately, arrive early, and remember to ask thoughtful questions about the role and company."},
		{Question: "what skills are in demand", Answer: "Currently in demand: digital literacy, data analysis, programming, AI/ML skills, digital marketing, project management, communication skills, and adaptability. Focus on both technical and soft skills."},
		{Question: "how to write a good resume", Answer: "Use a clean format, highlight achievements with metrics, tailor it to each job, include relevant keywords, keep it concise (1-2 pages), and proofread carefully for errors."},
		{Question: "career change advice", Answer: "Research your target industry, identify transferable skills, consider additional education if needed, network with people in the field, gain relevant experience through projects or volunteering, and update your resume accordingly."},
	}
}
