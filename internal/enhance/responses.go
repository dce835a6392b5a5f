package enhance

// cannedResponses maps a normalized section name to its stock rewrites.
var cannedResponses = map[string][]string{
	"summary": {
		"Results-driven professional with proven expertise in delivering high-impact solutions and driving organizational growth through strategic leadership and innovative problem-solving approaches.",
		"Dynamic and accomplished professional with a track record of excellence in cross-functional collaboration, project management, and delivering measurable business outcomes.",
		"Innovative and strategic professional with demonstrated success in leveraging cutting-edge technologies and best practices to drive operational efficiency and business transformation.",
	},
	"experience": {
		"• Spearheaded the development and implementation of scalable solutions, resulting in 40% improvement in system performance and enhanced user experience\n• Led cross-functional teams of 8+ members to deliver critical projects on time and within budget, consistently exceeding stakeholder expectations\n• Architected and deployed robust infrastructure solutions that reduced operational costs by 25% while improving system reliability\n• Mentored junior team members and established best practices that improved code quality and development velocity by 30%",
		"• Designed and implemented comprehensive solutions that streamlined business processes and improved operational efficiency by 35%\n• Collaborated with stakeholders across multiple departments to gather requirements and deliver solutions that aligned with business objectives\n• Optimized system performance through strategic refactoring and implementation of industry best practices\n• Established monitoring and alerting systems that reduced incident response time by 50%",
	},
	"skills": {
		"Technical Skills: Advanced proficiency in modern development frameworks and cloud technologies with expertise in scalable architecture design\nLeadership Skills: Proven ability to lead cross-functional teams and drive strategic initiatives to successful completion\nProblem-Solving: Strong analytical skills with experience in identifying bottlenecks and implementing effective solutions",
		"Core Competencies: Full-stack development, system architecture, database optimization, and agile methodologies\nSoft Skills: Excellent communication, team collaboration, project management, and stakeholder engagement\nTechnical Expertise: Cloud platforms, DevOps practices, automated testing, and continuous integration/deployment",
	},
	"education": {
		"Distinguished academic achievement with focus on cutting-edge technologies and practical application of theoretical concepts in real-world scenarios.",
		"Comprehensive educational foundation with emphasis on problem-solving methodologies and innovative approaches to complex technical challenges.",
	},
	"personal_info": {
		"Professional contact information optimized for networking and career advancement opportunities.",
		"Complete professional profile with verified contact details and established online presence.",
	},
}
