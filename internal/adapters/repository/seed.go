package repository

import "github.com/talentlens/growthboard/internal/domain/model"

// seedCandidates returns the demo profiles shipped with the service.
func seedCandidates() []model.Candidate {
	return []model.Candidate{
		{
			ID:              "sarah-chen",
			Name:            "Sarah Chen",
			Role:            "Senior Software Engineer",
			ExperienceYears: 6,
			Background:      "Full-stack developer with focus on cloud architecture. Started as frontend developer, transitioned to backend, now leading microservices initiatives.",
			Metrics: model.Metrics{
				Certifications:          5,
				CoursesCompleted:        8,
				LearningVelocity:        4,
				RoleTransitions:         3,
				TechStackBreadth:        12,
				SeniorityGrowth:         5,
				IndustrySwitches:        2,
				DomainPivots:            2,
				ChallengeResponse:       9,
				SideProjects:            4,
				Contributions:           6,
				PatentsPublications:     3,
				PerformanceImprovements: 4,
				MentorshipSought:        8,
				SelfAwareness:           9,
			},
			Timeline: []model.TimelineEvent{
				{Year: 2019, Event: "Joined as Junior Frontend Dev", Type: "role", SeniorityLevel: 1},
				{Year: 2020, Event: "AWS Certified Solutions Architect", Type: "certification", SeniorityLevel: 1},
				{Year: 2020, Event: "Transitioned to Full-Stack", Type: "role", SeniorityLevel: 2},
				{Year: 2021, Event: "Led migration to microservices", Type: "achievement", SeniorityLevel: 2},
				{Year: 2022, Event: "Promoted to Senior Engineer", Type: "role", SeniorityLevel: 3},
				{Year: 2023, Event: "Kubernetes CKA certified", Type: "certification", SeniorityLevel: 3},
				{Year: 2024, Event: "Leading cloud architecture team", Type: "achievement", SeniorityLevel: 4},
			},
		},
		{
			ID:              "marcus-rodriguez",
			Name:            "Marcus Rodriguez",
			Role:            "Product Manager",
			ExperienceYears: 8,
			Background:      "Started as software engineer, pivoted to product management. Specialized in B2B SaaS products with focus on data analytics.",
			Metrics: model.Metrics{
				Certifications:          2,
				CoursesCompleted:        12,
				LearningVelocity:        6,
				RoleTransitions:         2,
				TechStackBreadth:        8,
				SeniorityGrowth:         7,
				IndustrySwitches:        3,
				DomainPivots:            1,
				ChallengeResponse:       8,
				SideProjects:            2,
				Contributions:           8,
				PatentsPublications:     1,
				PerformanceImprovements: 3,
				MentorshipSought:        7,
				SelfAwareness:           7,
			},
			Timeline: []model.TimelineEvent{
				{Year: 2017, Event: "Software Engineer at E-commerce startup", Type: "role", SeniorityLevel: 2},
				{Year: 2018, Event: "Transitioned to Associate PM", Type: "role", SeniorityLevel: 2},
				{Year: 2019, Event: "Launched mobile analytics platform", Type: "achievement", SeniorityLevel: 2},
				{Year: 2020, Event: "Switched to EdTech", Type: "role", SeniorityLevel: 2},
				{Year: 2021, Event: "Product Management Certification", Type: "certification", SeniorityLevel: 2},
				{Year: 2022, Event: "Senior PM at FinTech", Type: "role", SeniorityLevel: 3},
				{Year: 2024, Event: "Led $5M ARR product line", Type: "achievement", SeniorityLevel: 3},
			},
		},
		{
			ID:              "aisha-patel",
			Name:            "Aisha Patel",
			Role:            "Data Scientist",
			ExperienceYears: 4,
			Background:      "PhD in Machine Learning, now applying research to production systems. Focus on NLP and recommendation systems.",
			Metrics: model.Metrics{
				Certifications:          3,
				CoursesCompleted:        15,
				LearningVelocity:        3,
				RoleTransitions:         2,
				TechStackBreadth:        10,
				SeniorityGrowth:         3,
				IndustrySwitches:        1,
				DomainPivots:            1,
				ChallengeResponse:       7,
				SideProjects:            6,
				Contributions:           4,
				PatentsPublications:     8,
				PerformanceImprovements: 2,
				MentorshipSought:        6,
				SelfAwareness:           6,
			},
			Timeline: []model.TimelineEvent{
				{Year: 2020, Event: "PhD in Machine Learning", Type: "certification", SeniorityLevel: 2},
				{Year: 2021, Event: "Research Scientist at AI Lab", Type: "role", SeniorityLevel: 2},
				{Year: 2021, Event: "Published 3 papers at NeurIPS", Type: "achievement", SeniorityLevel: 2},
				{Year: 2022, Event: "Joined as Data Scientist", Type: "role", SeniorityLevel: 2},
				{Year: 2023, Event: "Patent for recommendation algorithm", Type: "achievement", SeniorityLevel: 3},
				{Year: 2023, Event: "Promoted to Senior Data Scientist", Type: "role", SeniorityLevel: 3},
				{Year: 2024, Event: "Leading ML Platform team", Type: "achievement", SeniorityLevel: 4},
			},
		},
	}
}
