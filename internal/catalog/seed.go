package catalog

// Seed returns the built-in LearnFlow catalog used when no CATALOG_PATH is
// configured. Mirrors the shipped frontend-developer curriculum.
func Seed() *Catalog {
	return &Catalog{
		Paths: []Path{
			{
				ID:          "frontend-developer",
				Title:       "Frontend Developer",
				Description: "Build interactive user interfaces for web applications",
				Videos: []Video{
					{ID: "fe-1", Title: "HTML5 Semantic Elements", Topic: "html", Difficulty: "beginner", Duration: "14:02", Order: 1},
					{ID: "fe-2", Title: "CSS Flexbox and Grid", Topic: "css", Difficulty: "beginner", Duration: "21:45", Order: 2},
					{ID: "fe-3", Title: "Responsive Design Patterns", Topic: "css", Difficulty: "intermediate", Duration: "18:30", Order: 3},
					{ID: "fe-4", Title: "JavaScript Variables and Data Types", Topic: "javascript", Difficulty: "beginner", Duration: "12:34", Order: 4},
					{ID: "fe-5", Title: "Functions and Scope", Topic: "javascript", Difficulty: "beginner", Duration: "18:42", Order: 5},
					{ID: "fe-6", Title: "Working with APIs", Topic: "javascript", Difficulty: "intermediate", Duration: "32:15", Order: 6},
					{ID: "fe-7", Title: "React Components and Props", Topic: "react", Difficulty: "intermediate", Duration: "28:08", Order: 7},
				},
			},
			{
				ID:          "backend-developer",
				Title:       "Backend Developer",
				Description: "Server-side programming, databases and APIs",
				Videos: []Video{
					{ID: "be-1", Title: "HTTP and REST Fundamentals", Topic: "http", Difficulty: "beginner", Duration: "16:20", Order: 1},
					{ID: "be-2", Title: "Relational Databases", Topic: "sql", Difficulty: "beginner", Duration: "24:11", Order: 2},
					{ID: "be-3", Title: "Authentication and Sessions", Topic: "security", Difficulty: "intermediate", Duration: "27:54", Order: 3},
					{ID: "be-4", Title: "Designing Web APIs", Topic: "http", Difficulty: "advanced", Duration: "35:40", Order: 4},
				},
			},
		},
		Tests: []AssessmentTest{
			{
				ID:              "html-css-basics-test",
				Title:           "HTML & CSS Fundamentals Assessment",
				Description:     "Semantic HTML5 and CSS layout basics",
				PathID:          "frontend-developer",
				PrerequisiteFor: []string{"fe-4", "fe-5"},
				PassingScore:    85,
				TimeLimitMin:    15,
				Questions: []Question{
					{
						ID:            "html-1",
						Prompt:        "Which HTML5 element is best for the main navigation of a website?",
						Options:       []string{`<div class="nav">`, `<navigation>`, `<nav>`, `<menu>`},
						CorrectAnswer: 2,
						Explanation:   "<nav> is the semantic HTML5 element for navigation sections.",
						Difficulty:    "easy",
					},
					{
						ID:            "css-1",
						Prompt:        "Which CSS property is used to create a flexible container?",
						Options:       []string{"display: block", "display: flex", "display: grid", "display: inline"},
						CorrectAnswer: 1,
						Explanation:   "display: flex creates a flexible container arranging items in rows or columns.",
						Difficulty:    "easy",
					},
					{
						ID:            "css-2",
						Prompt:        "What is the CSS Box Model order from inside to outside?",
						Options:       []string{"content, border, padding, margin", "content, padding, border, margin", "content, margin, padding, border", "padding, content, border, margin"},
						CorrectAnswer: 1,
						Explanation:   "Box model order: content, then padding, then border, then margin.",
						Difficulty:    "hard",
					},
					{
						ID:            "css-3",
						Prompt:        "Which CSS Grid property defines the number of columns?",
						Options:       []string{"grid-columns", "grid-template-columns", "grid-column-count", "column-template"},
						CorrectAnswer: 1,
						Explanation:   "grid-template-columns defines the track sizing for grid columns.",
						Difficulty:    "medium",
					},
				},
			},
			{
				ID:              "javascript-fundamentals-test",
				Title:           "JavaScript Core Concepts Assessment",
				Description:     "Variables, functions and DOM manipulation",
				PathID:          "frontend-developer",
				PrerequisiteFor: []string{"fe-6", "fe-7"},
				PassingScore:    85,
				TimeLimitMin:    20,
				Questions: []Question{
					{
						ID:            "js-1",
						Prompt:        "What is the difference between let, const, and var?",
						Options:       []string{"No difference", "let and const are block-scoped, var is function-scoped", "var is newer than let", "const is mutable"},
						CorrectAnswer: 1,
						Explanation:   "let and const respect block scope; var hoists to function scope.",
						Difficulty:    "medium",
					},
					{
						ID:            "js-2",
						Prompt:        "Which method adds an element to the end of an array?",
						Options:       []string{"push()", "pop()", "shift()", "unshift()"},
						CorrectAnswer: 0,
						Explanation:   "push() appends one or more elements to the end of an array.",
						Difficulty:    "easy",
					},
					{
						ID:            "js-3",
						Prompt:        "What does document.querySelector return when nothing matches?",
						Options:       []string{"undefined", "an empty NodeList", "null", "it throws"},
						CorrectAnswer: 2,
						Explanation:   "querySelector returns null when no element matches the selector.",
						Difficulty:    "medium",
					},
				},
			},
			{
				ID:              "http-rest-test",
				Title:           "HTTP & REST Assessment",
				Description:     "Request methods, status codes and resource design",
				PathID:          "backend-developer",
				PrerequisiteFor: []string{"be-3", "be-4"},
				PassingScore:    85,
				TimeLimitMin:    10,
				Questions: []Question{
					{
						ID:            "http-1",
						Prompt:        "Which status code indicates a successfully created resource?",
						Options:       []string{"200", "201", "204", "302"},
						CorrectAnswer: 1,
						Explanation:   "201 Created signals a new resource was created.",
						Difficulty:    "easy",
					},
					{
						ID:            "http-2",
						Prompt:        "Which method is idempotent by definition?",
						Options:       []string{"POST", "PATCH", "PUT", "CONNECT"},
						CorrectAnswer: 2,
						Explanation:   "PUT replaces the target resource; repeating it yields the same state.",
						Difficulty:    "medium",
					},
				},
			},
		},
	}
}
