package persistence

import (
	"github.com/khoahotran/portfolio/internal/domain/education"
	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/internal/domain/site"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

func strPtr(s string) *string { return &s }

// experienceTable is the single source for both the list and detail views.
// Order here is the order the list endpoint returns.
var experienceTable = []experience.Experience{
	{
		Slug:          "internship-altus",
		Title:         "Software Developer",
		Company:       "PT. Altus Logistics Services Indonesia",
		CompanyURL:    strPtr("https://altusindonesia.com/"),
		LocationsURL:  strPtr("https://maps.app.goo.gl/nRe9MzxrbqnnmVr86"),
		Location:      "South Jakarta, Kuningan, DKI Jakarta, Indonesia",
		Period:        "Jul 2024 - Apr 2025",
		CurrentPeriod: strPtr("April 2025"),
		Description: "At Altus Logistics Services Indonesia, I was responsible for maintaining and managing internal software systems. " +
			"This role involved optimizing the internal database for enhanced performance, as well as implementing feature enhancements, " +
			"performing updates, and resolving bugs to ensure the stability and functionality of the applications.",
		Type: "Internship",
		Responsibilities: []string{
			"Managed and maintained internal software applications built on the ASP.NET Framework using C#, ensuring their continuous " +
				"stability, availability, and functionality to support the company's daily logistics operations.",
			"Utilized SQL Server Management Studio (SSMS) to design and execute efficient SQL queries for data management, while also " +
				"optimizing internal database performance through query analysis, index management, and routine maintenance to ensure " +
				"data integrity and speed.",
			"Actively developed applications by implementing new features and enhancements using C# for server-side logic and JavaScript " +
				"for the client-side experience. This role also involved proactive debugging and troubleshooting to resolve bugs, as well " +
				"as performing regular system updates to enhance security, performance, and technological relevance.",
		},
		Technologies: []string{"SQL Server Management Studio", "JavaScript", "ASP.NET", "C#"},
	},
	{
		Slug:          "graphic-designer-freelance",
		Title:         "Graphic Designer",
		Company:       "Signed a Non-Disclosure Agreement hence unable to provide company's detail.",
		Location:      "South Bekasi, West Java, Indonesia",
		Period:        "Dec 2020 - Jul 2022",
		CurrentPeriod: strPtr("July 2022"),
		Description: "My responsibilities included developing designs for social media feeds and managing the overall visual identity, " +
			"which involved creating all necessary assets for each project. To streamline team collaboration and workflow, I designed " +
			"and managed a comprehensive workspace in Notion, using it to organize project schedules, creative briefs, and all other " +
			"essential items for my colleagues.",
		Type: "Freelance",
		Responsibilities: []string{
			"I designed and developed engaging visual concepts for social media feeds, utilizing Adobe Photoshop for image compositions " +
				"and Adobe Illustrator for graphic elements to effectively reach the target audience. A key part of this role was managing " +
				"the brand's visual keys to ensure a strong, consistent, and cohesive identity across all social media platforms.",
			"I produced a wide range of original graphic assets, including icons, illustrations, and custom typography, by leveraging " +
				"vector-based software like Adobe Illustrator and CorelDRAW. I also used Adobe Photoshop for advanced image editing and " +
				"manipulation to create the high-quality visual materials required for various campaigns and designs.",
		},
		Technologies: []string{"Adobe Photoshop", "Adobe Illustrator", "CorelDRAW"},
	},
}

var educationRecord = education.Education{
	Degree:      "Undergraduate of Informatics Engineering",
	Institution: "Paramadina University",
	Location:    "Jakarta, Indonesia",
	Period:      "Sep 2022 - Present",
	Status:      "Ungraduate",
	GPA:         "3.35/4.00",
	Description: "Focused on Software Engineering, Human-Computer Interaction (HCI), and Full-Stack Web Development. " +
		"Specialized in building robust software systems and user-centered applications. Completed a capstone project " +
		"involving full-stack web development using modern technologies and industry best practices.",
	Achievements: []education.Achievement{
		{
			Title: "Community Service Committee",
			Description: "Informatics Engineering Study Program - Technology Utilization for Learning Activities " +
				"at PKBM 31 Jakarta and PKBM 21 Jakarta",
			Icon: "Users",
		},
		{
			Title: "3rd Place Hackathon Competition",
			Description: `With the theme "Unleashing the Potential of Future Technology: Exploring New Business ` +
				`Opportunities in the Era of Artificial Intelligence"`,
			Icon: "Trophy",
		},
	},
	Stats: []education.Stat{
		{Label: "Years", Value: "4", Icon: "Calendar"},
		{Label: "GPA", Value: "3.35", Icon: "Award"},
	},
}

var skillTable = []skill.Skill{
	{Name: "Adobe Illustrator", Image: "/assets/svg/illustrator.svg", Row: skill.RowDesign},
	{Name: "Adobe Photoshop", Image: "/assets/svg/photoshop.svg", Row: skill.RowDesign},
	{Name: "Adobe XD", Image: "/assets/svg/adobexd.svg", Row: skill.RowDesign},
	{Name: "Clip Studio Paint", Image: "/assets/svg/csp.svg", Row: skill.RowDesign},
	{Name: "Procreate", Image: "/assets/svg/procreate.svg", Row: skill.RowDesign},
	{Name: "Figma", Image: "/assets/svg/figma.svg", Row: skill.RowDesign},
	{Name: "SQL Server", Image: "/assets/svg/sqlserver.svg", Row: skill.RowDevelopment},
	{Name: "C#", Image: "/assets/svg/csharp.svg", Row: skill.RowDevelopment},
	{Name: "React", Image: "/assets/svg/react.svg", Row: skill.RowDevelopment},
	{Name: "Next JS", Image: "/assets/svg/nextjs.svg", Row: skill.RowDevelopment},
	{Name: "Tailwind CSS", Image: "/assets/svg/tailwindcss.svg", Row: skill.RowDevelopment},
	{Name: "Javascript", Image: "/assets/svg/javascript.svg", Row: skill.RowDevelopment},
}

var siteManifest = site.Manifest{
	Name:            "Personal Portfolio Adam Bagaskara Pratama",
	ShortName:       "My Portofolio",
	Description:     "Personal Portfolio of Adam Bagaskara Pratama",
	StartURL:        "/",
	Display:         "standalone",
	BackgroundColor: "#fff",
	ThemeColor:      "#fff",
	Icons: []site.Icon{
		{Src: "/favicon.ico", Sizes: "any", Type: "image/x-icon"},
	},
}
