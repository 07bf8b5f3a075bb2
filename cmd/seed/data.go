package main

const seedPassword = "password123"

var seedUsers = []string{
	"admin@example.com",
	"user1@example.com",
	"user2@example.com",
	"developer@example.com",
	"tester@example.com",
}

var seedCourses = []seedCourse{
	{
		name:          "Ruby on Rails Fundamentals",
		description:   "Learn the basics of Ruby on Rails framework including MVC architecture, routing, and database interactions.",
		durationHours: 40,
		tutors: []seedTutor{
			{"John Smith", "john.smith@example.com", "+1-555-0101", 8},
			{"Sarah Johnson", "sarah.johnson@example.com", "+1-555-0102", 5},
			{"Mike Davis", "mike.davis@example.com", "+1-555-0103", 12},
		},
	},
	{
		name:          "JavaScript Mastery",
		description:   "Master JavaScript programming including ES6+, DOM manipulation, and modern frameworks.",
		durationHours: 35,
		tutors: []seedTutor{
			{"Emily Wilson", "emily.wilson@example.com", "+1-555-0201", 6},
			{"David Brown", "david.brown@example.com", "+1-555-0202", 9},
		},
	},
	{
		name:          "Python for Data Science",
		description:   "Learn Python programming with focus on data analysis, machine learning, and scientific computing.",
		durationHours: 45,
		tutors: []seedTutor{
			{"Lisa Chen", "lisa.chen@example.com", "+1-555-0301", 7},
			{"Alex Rodriguez", "alex.rodriguez@example.com", "+1-555-0302", 10},
			{"Maria Garcia", "maria.garcia@example.com", "+1-555-0303", 4},
		},
	},
	{
		name:          "React Development",
		description:   "Build modern web applications with React, including hooks, context, and state management.",
		durationHours: 30,
		tutors: []seedTutor{
			{"Tom Anderson", "tom.anderson@example.com", "+1-555-0401", 6},
			{"Jennifer Lee", "jennifer.lee@example.com", "+1-555-0402", 8},
		},
	},
	{
		name:          "DevOps Engineering",
		description:   "Learn DevOps practices including CI/CD, containerization, and cloud deployment strategies.",
		durationHours: 50,
		tutors: []seedTutor{
			{"Robert Taylor", "robert.taylor@example.com", "+1-555-0501", 11},
			{"Amanda White", "amanda.white@example.com", "+1-555-0502", 7},
			{"Chris Martin", "chris.martin@example.com", "+1-555-0503", 9},
		},
	},
	{
		name:          "Database Design & SQL",
		description:   "Master database design principles, SQL queries, and database optimization techniques.",
		durationHours: 25,
		tutors: []seedTutor{
			{"Kevin Thompson", "kevin.thompson@example.com", "+1-555-0601", 13},
		},
	},
	{
		name:          "Mobile App Development",
		description:   "Build iOS and Android applications using React Native and modern mobile development tools.",
		durationHours: 55,
		tutors: []seedTutor{
			{"Rachel Green", "rachel.green@example.com", "+1-555-0701", 8},
			{"Daniel Kim", "daniel.kim@example.com", "+1-555-0702", 6},
		},
	},
	{
		name:          "Cybersecurity Fundamentals",
		description:   "Learn about network security, ethical hacking, and protecting applications from vulnerabilities.",
		durationHours: 40,
		tutors: []seedTutor{
			{"Sophie Turner", "sophie.turner@example.com", "+1-555-0801", 10},
			{"James Wilson", "james.wilson@example.com", "+1-555-0802", 12},
		},
	},
	{
		name:          "Machine Learning Basics",
		description:   "Introduction to machine learning algorithms, data preprocessing, and model evaluation.",
		durationHours: 60,
		tutors: []seedTutor{
			{"Nina Patel", "nina.patel@example.com", "+1-555-0901", 9},
			{"Carlos Mendez", "carlos.mendez@example.com", "+1-555-0902", 7},
			{"Grace Wong", "grace.wong@example.com", "+1-555-0903", 11},
		},
	},
	{
		name:          "Web Design & UX",
		description:   "Learn modern web design principles, user experience, and responsive design techniques.",
		durationHours: 30,
		tutors: []seedTutor{
			{"Olivia Davis", "olivia.davis@example.com", "+1-555-1001", 6},
			{"Ryan Cooper", "ryan.cooper@example.com", "+1-555-1002", 8},
		},
	},
}
