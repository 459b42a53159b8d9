package models

// Team — исследовательская группа института для страницы /teams.
// Данные статичны: состав меняется релизом, а не через API.
type Team struct {
	Name        string   `json:"name"`
	Focus       string   `json:"focus"`
	Description string   `json:"description"`
	Projects    []string `json:"projects"`
	Members     int      `json:"members"`
	Lead        string   `json:"lead"`
}

// ResearchTeams возвращает текущий состав исследовательских групп.
func ResearchTeams() []Team {
	return []Team{
		{
			Name:        "Economic Policy Research",
			Focus:       "Macroeconomic analysis, fiscal policy, and international trade",
			Description: "Our economists examine the complex relationships between policy decisions and economic outcomes, providing evidence-based recommendations for sustainable growth and stability.",
			Projects: []string{
				"Global Trade Impact Assessment",
				"Digital Currency Policy Framework",
				"Post-Pandemic Economic Recovery Analysis",
			},
			Members: 18,
			Lead:    "Dr. Sarah Chen",
		},
		{
			Name:        "Climate & Environmental Studies",
			Focus:       "Climate change mitigation, environmental policy, and sustainability",
			Description: "This interdisciplinary team combines environmental science, economics, and policy analysis to address the urgent challenges of climate change and environmental degradation.",
			Projects: []string{
				"Carbon Pricing Mechanisms Study",
				"Urban Sustainability Index",
				"Renewable Energy Transition Pathways",
			},
			Members: 22,
			Lead:    "Prof. Michael Rodriguez",
		},
		{
			Name:        "Social Innovation Lab",
			Focus:       "Social policy, inequality, and community development",
			Description: "Researchers in this lab explore innovative approaches to social challenges, focusing on evidence-based interventions that promote equity and social cohesion.",
			Projects: []string{
				"Universal Basic Income Pilot Analysis",
				"Digital Divide Assessment",
				"Community Resilience Framework",
			},
			Members: 15,
			Lead:    "Dr. Amara Okafor",
		},
		{
			Name:        "Technology & Society",
			Focus:       "Digital governance, AI ethics, and technological impact",
			Description: "This team examines the intersection of technology and society, providing frameworks for responsible innovation and digital governance.",
			Projects: []string{
				"AI Governance Standards",
				"Platform Regulation Analysis",
				"Digital Rights Framework",
			},
			Members: 12,
			Lead:    "Dr. James Kim",
		},
		{
			Name:        "Global Health Initiative",
			Focus:       "Health systems, pandemic preparedness, and health equity",
			Description: "Our health researchers work on strengthening health systems, improving pandemic preparedness, and addressing health inequalities worldwide.",
			Projects: []string{
				"Pandemic Preparedness Framework",
				"Healthcare Access Analysis",
				"Mental Health Policy Review",
			},
			Members: 20,
			Lead:    "Dr. Elena Petrov",
		},
		{
			Name:        "Democratic Governance",
			Focus:       "Political institutions, electoral systems, and civic engagement",
			Description: "This team studies democratic institutions and processes, working to strengthen governance systems and promote civic participation.",
			Projects: []string{
				"Electoral System Reform Study",
				"Civic Engagement Measurement",
				"Digital Democracy Tools",
			},
			Members: 14,
			Lead:    "Prof. David Thompson",
		},
	}
}
