package service

import "planboard/internal/domain"

// defaultPhases is the fixed five-phase template every project starts
// with. Deterministic: never derived from the project name.
func defaultPhases() []domain.Phase {
	return []domain.Phase{
		{
			Name:     "Planning Phase",
			Duration: "2 weeks",
			Content:  "Initial project planning and requirement gathering",
		},
		{
			Name:     "Design Phase",
			Duration: "3 weeks",
			Content:  "System design and architecture planning",
		},
		{
			Name:     "Development Phase",
			Duration: "8 weeks",
			Content:  "Core development and implementation",
		},
		{
			Name:     "Testing Phase",
			Duration: "2 weeks",
			Content:  "Quality assurance and testing",
		},
		{
			Name:     "Deployment Phase",
			Duration: "1 week",
			Content:  "Production deployment and launch",
		},
	}
}

func defaultTeamMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{
			Role:             "Project Manager",
			Responsibilities: []string{"Project coordination", "Timeline management"},
			Allocation:       "100%",
		},
		{
			Role:             "Developer",
			Responsibilities: []string{"Code development", "Technical implementation"},
			Allocation:       "100%",
		},
	}
}

func defaultCommunication() domain.Communication {
	return domain.Communication{
		Meetings: []domain.Meeting{
			{
				Title:    "Project Kickoff",
				Schedule: "Week 1 - Monday 10:00 AM",
				Audience: "All Team Members",
				Content:  "Project introduction, goals overview, and team introductions",
			},
		},
		Stakeholders: []string{"Project Sponsor", "Team Lead"},
	}
}
