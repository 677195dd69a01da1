package rules

var defaultStopwords = []string{
	"the", "and", "for", "with", "you", "your", "our", "are", "was", "were",
	"will", "would", "can", "could", "should", "have", "has", "had", "this",
	"that", "these", "those", "from", "into", "onto", "about", "above", "below",
	"over", "under", "than", "then", "them", "they", "their", "there", "here",
	"what", "when", "where", "which", "who", "whom", "why", "how", "all", "any",
	"each", "both", "few", "more", "most", "other", "some", "such", "only",
	"own", "same", "very", "just", "also", "not", "but", "its", "his", "her",
	"able", "etc", "per", "via", "work", "including", "within",
}

// defaultPhrases are multi-word and tech terms credited once when present.
var defaultPhrases = []string{
	"machine learning",
	"deep learning",
	"data analysis",
	"data science",
	"data engineering",
	"project management",
	"product management",
	"rest api",
	"restful api",
	"graphql api",
	"software development",
	"software engineering",
	"web development",
	"front end",
	"back end",
	"full stack",
	"unit testing",
	"test automation",
	"continuous integration",
	"continuous delivery",
	"ci cd",
	"cloud computing",
	"google cloud",
	"amazon web services",
	"microsoft azure",
	"distributed systems",
	"system design",
	"object oriented",
	"agile methodology",
	"scrum master",
	"version control",
	"customer service",
	"stakeholder management",
	"cross functional",
	"problem solving",
	"natural language processing",
	"computer vision",
	"node.js",
	"react native",
}

var defaultMustHints = []string{
	"required",
	"requirements",
	"must have",
	"must-have",
	"minimum qualifications",
	"basic qualifications",
	"what you need",
	"what you will need",
	"you must",
	"essential",
}

var defaultNiceHints = []string{
	"nice to have",
	"nice-to-have",
	"preferred",
	"bonus",
	"a plus",
	"desired",
	"good to have",
	"would be great",
}

var defaultActionVerbs = []string{
	"achieved", "administered", "analyzed", "architected", "automated",
	"built", "collaborated", "configured", "coordinated", "created",
	"decreased", "delivered", "deployed", "designed", "developed",
	"directed", "drove", "engineered", "established", "executed",
	"generated", "grew", "implemented", "improved", "increased",
	"initiated", "launched", "led", "managed", "mentored",
	"migrated", "negotiated", "optimized", "orchestrated", "organized",
	"oversaw", "planned", "produced", "reduced", "refactored",
	"resolved", "scaled", "shipped", "spearheaded", "streamlined",
	"supervised", "trained", "transformed", "upgraded",
}

var defaultIndustryKeywords = []string{
	"agile", "analytics", "api", "automation", "aws", "azure", "budget",
	"ci/cd", "cloud", "compliance", "cybersecurity", "dashboard", "database",
	"devops", "docker", "forecasting", "gcp", "git", "java", "javascript",
	"kpi", "kubernetes", "linux", "microservices", "python", "react",
	"roadmap", "saas", "scrum", "security", "sql", "stakeholder",
	"strategy", "terraform", "typescript",
}

var defaultSectionHeadings = map[string][]string{
	SectionSummary:    {"summary", "profile", "objective", "about me"},
	SectionExperience: {"experience", "employment", "work history", "professional background"},
	SectionEducation:  {"education", "academic", "degree", "university"},
	SectionSkills:     {"skills", "technologies", "competencies", "technical proficiencies"},
}

var defaultStandardFonts = []string{
	"Arial", "Calibri", "Cambria", "Garamond", "Georgia", "Helvetica",
	"Times New Roman", "Verdana", "Tahoma",
}

var defaultFormatAdvice = []string{
	"Use standard section headings such as Experience, Education and Skills",
	"Avoid tables, text boxes and multi-column layouts",
	"Save as PDF or DOCX with selectable text",
}
