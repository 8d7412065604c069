package portfolio

var personalInfo = PersonalInfo{
	Name:     "Alex Chen",
	Title:    "Full-Stack Engineer & AI Enthusiast",
	Location: "San Francisco, CA",
	Email:    "alex@example.com",
	Github:   "https://github.com/alexchen",
	Linkedin: "https://linkedin.com/in/alexchen",
	Bio: `Passionate software engineer with expertise in building cutting-edge web applications
	and AI-powered solutions. I love exploring the intersection of technology and human experience.`,
}

var projects = []Project{
	{
		ID:          "1",
		Title:       "NeuralChat AI Platform",
		Description: "Revolutionary AI-powered communication platform with neural network integration",
		LongDescription: `A cutting-edge platform that leverages advanced **neural networks** to create intelligent
communication systems. Features real-time AI responses, sentiment analysis, and adaptive learning capabilities.`,
		Technologies: []string{"Next.js", "Python", "TensorFlow", "WebGL", "Socket.io", "PostgreSQL"},
		ImageURL:     "/static/projects/neural-chat.jpg",
		DemoURL:      "https://neuralchat-demo.com",
		GithubURL:    "https://github.com/user/neural-chat",
		Featured:     true,
		Category:     CategoryML,
		Year:         2024,
		Status:       StatusCompleted,
	},
	{
		ID:          "2",
		Title:       "Quantum Portfolio Engine",
		Description: "Next-generation portfolio management system with quantum computing algorithms",
		LongDescription: `An innovative portfolio management system that uses **quantum computing principles** for
optimization and risk analysis. Features real-time market data integration and predictive analytics.`,
		Technologies: []string{"React", "Node.js", "Quantum.js", "D3.js", "Redis", "MongoDB"},
		ImageURL:     "/static/projects/quantum-portfolio.jpg",
		DemoURL:      "https://quantum-portfolio.com",
		GithubURL:    "https://github.com/user/quantum-portfolio",
		Featured:     true,
		Category:     CategoryWeb,
		Year:         2024,
		Status:       StatusInProgress,
	},
	{
		ID:          "3",
		Title:       "HoloMeet VR Platform",
		Description: "Immersive virtual reality meeting platform with holographic avatars",
		LongDescription: `A revolutionary VR platform that enables immersive business meetings with realistic
holographic avatars, spatial audio, and collaborative 3D workspaces.`,
		Technologies: []string{"Unity", "C#", "WebXR", "Three.js", "WebRTC", "Firebase"},
		ImageURL:     "/static/projects/holomeet.jpg",
		DemoURL:      "https://holomeet-vr.com",
		GithubURL:    "https://github.com/user/holomeet",
		Featured:     true,
		Category:     CategoryWeb,
		Year:         2023,
		Status:       StatusCompleted,
	},
	{
		ID:          "4",
		Title:       "CyberGuard Security Suite",
		Description: "Advanced cybersecurity framework with AI-powered threat detection",
		LongDescription: `A comprehensive security suite that uses machine learning algorithms to detect and
prevent cyber threats in real-time. Features *behavioral analysis* and automated response systems.`,
		Technologies: []string{"Go", "Python", "Elasticsearch", "Kafka", "Docker", "Kubernetes"},
		ImageURL:     "/static/projects/cyberguard.jpg",
		GithubURL:    "https://github.com/user/cyberguard",
		Featured:     false,
		Category:     CategoryAPI,
		Year:         2023,
		Status:       StatusCompleted,
	},
}

var skills = []Skill{
	{Name: "React", Category: "frontend", Level: 95, Years: 5, Icon: "⚛️"},
	{Name: "Next.js", Category: "frontend", Level: 90, Years: 3, Icon: "▲"},
	{Name: "TypeScript", Category: "frontend", Level: 92, Years: 4, Icon: "📘"},
	{Name: "Node.js", Category: "backend", Level: 88, Years: 5, Icon: "🟢"},
	{Name: "Python", Category: "backend", Level: 85, Years: 4, Icon: "🐍"},
	{Name: "TensorFlow", Category: "ml", Level: 75, Years: 2, Icon: "🧠"},
	{Name: "Three.js", Category: "frontend", Level: 80, Years: 2, Icon: "🎮"},
	{Name: "WebGL", Category: "frontend", Level: 70, Years: 2, Icon: "🎨"},
	{Name: "PostgreSQL", Category: "backend", Level: 82, Years: 4, Icon: "🐘"},
	{Name: "Docker", Category: "devops", Level: 78, Years: 3, Icon: "🐳"},
	{Name: "AWS", Category: "devops", Level: 85, Years: 4, Icon: "☁️"},
	{Name: "Figma", Category: "design", Level: 75, Years: 3, Icon: "🎨"},
}

var experiences = []Experience{
	{
		ID:       "1",
		Company:  "QuantumTech Industries",
		Position: "Senior Full-Stack Engineer",
		Duration: "2022 - Present",
		Description: []string{
			"Lead development of quantum-inspired algorithms for web applications",
			"Architected scalable microservices handling 1M+ daily users",
			"Mentored junior developers and established coding standards",
			"Implemented AI-driven features increasing user engagement by 40%",
		},
		Technologies: []string{"React", "Node.js", "TensorFlow", "Kubernetes", "PostgreSQL"},
		Current:      true,
	},
	{
		ID:       "2",
		Company:  "NeuralSoft Solutions",
		Position: "Frontend Architect",
		Duration: "2020 - 2022",
		Description: []string{
			"Designed and implemented complex 3D visualizations using WebGL",
			"Built responsive web applications with advanced animations",
			"Optimized application performance achieving 95+ Lighthouse scores",
			"Collaborated with UX team to create intuitive user interfaces",
		},
		Technologies: []string{"React", "Three.js", "WebGL", "TypeScript", "Redux"},
		Current:      false,
	},
}
