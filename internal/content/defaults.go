package content

var (
	aboutMe = `I'm a passionate software developer with expertise in building web applications. I enjoy tackling complex problems and creating intuitive user experiences.

With a focus on clean code and user-centered design, I strive to build applications that are not only functional but also intuitive and enjoyable to use.

When I'm not coding, you can find me exploring new technologies, contributing to open-source projects, or enjoying a good book.

Passionate about creating elegant solutions to complex problems.`

	blipText = `A Real-time Chat application using React Nodejs and SocketIO.`

	scheduloText = `A Role-Based Access Control System for Managing and Scheduling Classes for Teachers`

	terminalText = `A terminal-style developer portfolio built with React inspired by the look and feel of a classic Linux terminal`

	iimText = `Freelanced as a Graphic Designer for IIM Indore in February 2025. Designed modern, professional resume
	templates and a high-impact placement brochure tailored to corporate and academic stakeholders. Ensured brand
	consistency, visual appeal, and readability across all formats, optimized for both print and digital use.`

	panchayatText = `Worked as a Full Stack Developer on the Kidangoor Grama Panchayat Government Digitization Project,
	aimed at modernizing local governance services. Led the development of key modules including citizen service
	portals, complaint management, and digital record systems using React for the frontend, Node.js for the backend,
	and SQL for data management.`

	visionaryText = `Led the development of 'Visionary Guidance', an AI-powered smart guidance system for the visually
	impaired, as a B.Tech final year project. Smart glasses with ESP32-CAM and a Raspberry Pi 5 run real-time object
	detection via YOLOv8 and OpenCV, delivering audio feedback through Bluetooth, with a Flutter companion app for
	voice-assisted navigation.`

	gradeMasterText = `Led a team to develop a responsive web application for student report management and
	verification as part of the B.Tech S6 mini project. Built with PHP and MySQL for the backend, and HTML, CSS, JS
	for the frontend.`
)

// Default returns the built-in site content.
func Default() Content {
	return Content{
		Logo: "/assets/Logo.svg",
		Profile: Profile{
			Name:        "Anugraheeth Mohanan",
			Title:       "Full Stack Developer",
			Description: "I build exceptional and accessible digital experiences for the web.",
			About:       aboutMe,
			Avatar:      "/assets/me.png",
			Skills: []string{
				"JavaScript", "React", "Node.js", "Express", "MongoDB",
				"HTML/CSS", "Python", "SQL", "Git", "Docker",
			},
		},
		Projects: []Project{
			{
				Image:       "/assets/Blip.png",
				Title:       "BLIP",
				Description: blipText,
				Tech:        []string{"React", "Node.js", "MongoDB", "Socket.io", "Zustand"},
				Link:        "https://blip-bx4o.onrender.com/",
			},
			{
				Image:       "/assets/Schedulo.png",
				Title:       "Schedulo",
				Description: scheduloText,
				Tech:        []string{"React", "Express", "MongoDB", "Axios", "Redux"},
				Link:        "https://rbac-frontend-bu6e.onrender.com",
			},
			{
				Image:       "/assets/terminal.png",
				Title:       "Portfolio Website",
				Description: terminalText,
				Tech:        []string{"React"},
				Link:        "https://anugraheeth.github.io/TerminalPortfolio/",
			},
		},
		Experience: []Experience{
			{Company: "IIM Indore", Role: "Freelance Graphic Designer", Period: "Feb 2025", Description: iimText},
			{Company: "Hasthadhi - Kidangoor Grama Panchayat", Role: "Full Stack Developer", Period: "2024 - Present", Description: panchayatText},
			{Company: "Main Project - Visionary Guidance", Role: "Team Lead, Full Stack Developer", Period: "2024 - 2025", Description: visionaryText},
			{Company: "Mini Project - Grade Master", Role: "Team Lead, Frontend Developer", Period: "2024", Description: gradeMasterText},
		},
		Contact: Contact{
			Email:    "anugraheethmohan@gmail.com",
			GitHub:   "https://github.com/anugraheeth",
			LinkedIn: "https://linkedin.com/in/anugraheethmohanan",
		},
		Resume: Resume{
			Document: "/assets/Anugraheeth_Resume.pdf",
			Preview:  "/assets/Preview.png",
		},
	}
}
