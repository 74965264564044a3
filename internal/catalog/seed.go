// Package catalog holds the built-in career catalog. It is the default
// data source when no Postgres catalog is configured, and the seed rows
// for an empty careers table when one is.
package catalog

import (
	"github.com/lib/pq"

	"github.com/careerpath/backend/internal/models"
)

// Seed returns the built-in catalog in canonical order. Callers get a
// fresh slice each time; the entries themselves are value copies.
func Seed() []models.Career {
	return []models.Career{
		{
			ID:                1,
			Title:             "Data Scientist",
			Category:          "Technology",
			Description:       "Analyze complex data to help organizations make better decisions using statistical models and machine learning algorithms.",
			RequiredSkills:    pq.StringArray{"python", "machine learning", "sql", "statistics", "data analysis", "pandas", "numpy"},
			RecommendedSkills: pq.StringArray{"deep learning", "cloud computing", "big data", "docker", "kubernetes"},
			AverageSalary:     "$120,000 - $160,000",
			GrowthRate:        "22% (Much faster than average)",
			ExperienceNeeded:  "3-5 years",
			Education:         "Master's in Computer Science/Statistics/Mathematics",
			Companies:         pq.StringArray{"Google", "Microsoft", "Amazon", "Facebook", "Netflix"},
			LearningPath:      pq.StringArray{"Python Basics", "Statistics", "ML Algorithms", "Deep Learning", "MLOps"},
			JobMarket:         "High demand with 31% projected growth",
		},
		{
			ID:                2,
			Title:             "Machine Learning Engineer",
			Category:          "Technology",
			Description:       "Design, build, and deploy machine learning models and systems for production environments.",
			RequiredSkills:    pq.StringArray{"python", "machine learning", "deep learning", "tensorflow", "pytorch", "docker", "aws"},
			RecommendedSkills: pq.StringArray{"kubernetes", "mlops", "ci/cd", "apache spark", "hadoop"},
			AverageSalary:     "$140,000 - $180,000",
			GrowthRate:        "28% (Much faster than average)",
			ExperienceNeeded:  "4-6 years",
			Education:         "Bachelor's/Master's in Computer Science/AI",
			Companies:         pq.StringArray{"Tesla", "OpenAI", "NVIDIA", "Uber", "Airbnb"},
			LearningPath:      pq.StringArray{"ML Fundamentals", "Deep Learning", "Cloud Platforms", "MLOps", "System Design"},
			JobMarket:         "Very high demand with AI boom",
		},
		{
			ID:                3,
			Title:             "Frontend Developer",
			Category:          "Technology",
			Description:       "Build responsive and interactive user interfaces for web applications using modern frameworks.",
			RequiredSkills:    pq.StringArray{"javascript", "react", "html", "css", "typescript", "redux"},
			RecommendedSkills: pq.StringArray{"next.js", "graphql", "webpack", "jest", "cypress"},
			AverageSalary:     "$85,000 - $130,000",
			GrowthRate:        "13% (Faster than average)",
			ExperienceNeeded:  "2-4 years",
			Education:         "Bachelor's in Computer Science or related field",
			Companies:         pq.StringArray{"Meta", "Spotify", "Shopify", "Stripe", "Twitter"},
			LearningPath:      pq.StringArray{"HTML/CSS", "JavaScript", "React", "State Management", "Testing"},
			JobMarket:         "Steady demand with good opportunities",
		},
		{
			ID:                4,
			Title:             "Backend Developer",
			Category:          "Technology",
			Description:       "Develop server-side logic, databases, and APIs to support web and mobile applications.",
			RequiredSkills:    pq.StringArray{"python", "java", "node.js", "sql", "mongodb", "docker", "aws"},
			RecommendedSkills: pq.StringArray{"microservices", "kafka", "redis", "kubernetes", "graphql"},
			AverageSalary:     "$95,000 - $140,000",
			GrowthRate:        "15% (Faster than average)",
			ExperienceNeeded:  "3-5 years",
			Education:         "Bachelor's in Computer Science",
			Companies:         pq.StringArray{"Amazon", "Google", "Microsoft", "PayPal", "LinkedIn"},
			LearningPath:      pq.StringArray{"Backend Fundamentals", "Databases", "APIs", "Cloud Services", "DevOps"},
			JobMarket:         "High demand across all industries",
		},
		{
			ID:                5,
			Title:             "DevOps Engineer",
			Category:          "Technology",
			Description:       "Bridge development and operations teams to automate and streamline software deployment.",
			RequiredSkills:    pq.StringArray{"docker", "kubernetes", "aws", "ci/cd", "linux", "python", "bash"},
			RecommendedSkills: pq.StringArray{"terraform", "ansible", "prometheus", "grafana", "jenkins"},
			AverageSalary:     "$110,000 - $150,000",
			GrowthRate:        "21% (Much faster than average)",
			ExperienceNeeded:  "3-5 years",
			Education:         "Bachelor's in Computer Science/IT",
			Companies:         pq.StringArray{"Netflix", "Uber", "Airbnb", "Slack", "Atlassian"},
			LearningPath:      pq.StringArray{"Linux Basics", "Containerization", "Cloud Platforms", "CI/CD", "Monitoring"},
			JobMarket:         "Very high demand with cloud adoption",
		},
		{
			ID:                6,
			Title:             "Data Analyst",
			Category:          "Business & Analytics",
			Description:       "Interpret data and turn it into information for business decision-making through reports and visualizations.",
			RequiredSkills:    pq.StringArray{"sql", "excel", "python", "tableau", "power bi", "statistics"},
			RecommendedSkills: pq.StringArray{"r", "snowflake", "looker", "google analytics", "airflow"},
			AverageSalary:     "$70,000 - $110,000",
			GrowthRate:        "18% (Much faster than average)",
			ExperienceNeeded:  "1-3 years",
			Education:         "Bachelor's in Business/Statistics/Computer Science",
			Companies:         pq.StringArray{"Amazon", "IBM", "Accenture", "Deloitte", "McKinsey"},
			LearningPath:      pq.StringArray{"SQL", "Data Visualization", "Statistics", "Python", "Business Intelligence"},
			JobMarket:         "High demand across all sectors",
		},
		{
			ID:                7,
			Title:             "Cybersecurity Analyst",
			Category:          "Security",
			Description:       "Protect computer systems and networks from cyber threats and security breaches.",
			RequiredSkills:    pq.StringArray{"network security", "linux", "python", "siem", "firewalls", "encryption"},
			RecommendedSkills: pq.StringArray{"ethical hacking", "cloud security", "compliance", "threat intelligence", "soc"},
			AverageSalary:     "$90,000 - $130,000",
			GrowthRate:        "33% (Much faster than average)",
			ExperienceNeeded:  "2-4 years",
			Education:         "Bachelor's in Cybersecurity/Computer Science",
			Companies:         pq.StringArray{"CrowdStrike", "Palo Alto Networks", "Cisco", "IBM Security", "McAfee"},
			LearningPath:      pq.StringArray{"Networking", "Security Fundamentals", "Tools & Technologies", "Threat Analysis", "Compliance"},
			JobMarket:         "Extremely high demand with increasing threats",
		},
		{
			ID:                8,
			Title:             "Cloud Architect",
			Category:          "Cloud & Infrastructure",
			Description:       "Design and implement cloud computing strategies and solutions for organizations.",
			RequiredSkills:    pq.StringArray{"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "python"},
			RecommendedSkills: pq.StringArray{"serverless", "microservices", "devsecops", "cost optimization", "multi-cloud"},
			AverageSalary:     "$130,000 - $190,000",
			GrowthRate:        "25% (Much faster than average)",
			ExperienceNeeded:  "5-8 years",
			Education:         "Bachelor's/Master's in Computer Science",
			Companies:         pq.StringArray{"Amazon Web Services", "Microsoft Azure", "Google Cloud", "Oracle", "VMware"},
			LearningPath:      pq.StringArray{"Cloud Fundamentals", "Infrastructure as Code", "Networking", "Security", "Architecture Patterns"},
			JobMarket:         "Very high demand with cloud migration",
		},
	}
}
