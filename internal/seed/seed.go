// Package seed holds the fixed demonstration dataset loaded by the
// POST /api/events/seed endpoint.
package seed

import (
	"time"

	"meetup_backend/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Events returns a fresh copy of the demonstration dataset. Ids and
// createdAt are left zero; the repository assigns them on insert.
func Events() []model.Event {
	return []model.Event{
		{
			Title:    "Tech Conference 2023",
			Type:     model.EventTypeOffline,
			Date:     date(2023, time.July, 13),
			Time:     "09:00 AM - 05:00 PM",
			Image:    "https://picsum.photos/seed/techconf/400/300.jpg",
			HostedBy: "Tech Innovators Inc.",
			Venue:    "Convention Center",
			Address:  "123 Main St, Tech City",

			TicketPrice: 150,
			Speakers: []model.Speaker{
				{Name: "Alice Future", Title: "CEO of Tomorrow"},
				{Name: "Bob Tech", Title: "CTO of InnovateTech"},
			},
			Description: "Join us for a full-day conference on the latest in technology, " +
				"featuring keynotes from industry leaders. This event will cover emerging " +
				"technologies including AI, blockchain, quantum computing, and more. Network " +
				"with professionals from around the world and gain insights into the future " +
				"of technology. Lunch and refreshments will be provided.",
			Tags:           []string{"Technology", "Networking", "Innovation"},
			DressCode:      "Business Formal",
			AgeRestriction: "18+",
		},
		{
			Title:       "Design Workshop",
			Type:        model.EventTypeOffline,
			Date:        date(2023, time.July, 10),
			Time:        "10:00 AM - 04:00 PM",
			Image:       "https://picsum.photos/seed/designwork/400/300.jpg",
			HostedBy:    "Creative Minds",
			Venue:       "Art Studio",
			Address:     "456 Creative Lane, Design City",
			TicketPrice: 75,
			Speakers: []model.Speaker{
				{Name: "Bob Palette", Title: "UI/UX Master"},
			},
			Description: "Hands-on workshop covering modern design principles and tools. " +
				"Learn from industry experts as they share their techniques for creating " +
				"stunning designs: color theory, typography, layout, user experience and " +
				"design thinking. Participants work on real projects and receive " +
				"personalized feedback. All materials provided.",
			Tags:           []string{"Design", "UI/UX", "Workshop"},
			DressCode:      "Smart Casual",
			AgeRestriction: "16+",
		},
		{
			Title:       "Marketing Seminar",
			Type:        model.EventTypeOffline,
			Date:        date(2023, time.August, 15),
			Time:        "10:00 AM - 12:00 PM",
			Image:       "https://picsum.photos/seed/marketsem/400/300.jpg",
			HostedBy:    "Marketing Experts",
			Venue:       "Marketing City",
			Address:     "789 Marketing Avenue, City",
			TicketPrice: 3000,
			Speakers: []model.Speaker{
				{Name: "Sarah Johnson", Title: "Market Manager"},
				{Name: "Michael Brown", Title: "SEO Expert"},
			},
			Description: "An insightful seminar on modern marketing strategies, SEO, and " +
				"brand growth. Covers the latest trends in digital marketing including " +
				"social media, content, email and search engine optimization. Participants " +
				"receive a certificate of completion and access to exclusive resources.",
			Tags:           []string{"Marketing", "SEO", "Branding"},
			DressCode:      "Smart Casual",
			AgeRestriction: "18 years and above",
		},
		{
			Title:       "React Online Summit",
			Type:        model.EventTypeOnline,
			Date:        date(2023, time.September, 20),
			Time:        "02:00 PM - 06:00 PM GMT",
			Image:       "https://picsum.photos/seed/reactsummit/400/300.jpg",
			HostedBy:    "React Community",
			TicketPrice: 0,
			Speakers: []model.Speaker{
				{Name: "Dan Abramov", Title: "Core React Team"},
			},
			Description: "A free online summit covering the latest features and best " +
				"practices in React. This virtual event brings together React developers " +
				"from around the world: hooks, context, performance, testing and more. " +
				"Join live Q&A sessions with React experts.",
			Tags:           []string{"React", "JavaScript", "Frontend", "Online"},
			DressCode:      "Casual",
			AgeRestriction: "None",
		},
		{
			Title:       "AI & Machine Learning Expo",
			Type:        model.EventTypeOffline,
			Date:        date(2023, time.October, 5),
			Time:        "09:30 AM - 06:30 PM",
			Image:       "https://picsum.photos/seed/aiexpo/400/300.jpg",
			HostedBy:    "AI Innovations Lab",
			Venue:       "Tech Hub Convention Center",
			Address:     "321 Innovation Boulevard, Silicon Valley",
			TicketPrice: 250,
			Speakers: []model.Speaker{
				{Name: "Dr. Emily Chen", Title: "AI Research Director"},
				{Name: "Prof. James Wilson", Title: "Machine Learning Expert"},
				{Name: "Alex Kumar", Title: "Deep Learning Engineer"},
			},
			Description: "Explore the cutting-edge developments in artificial intelligence " +
				"and machine learning at this comprehensive expo. Keynotes, hands-on " +
				"workshops and an exhibition of the latest AI technologies: neural " +
				"networks, NLP, computer vision and ethical AI. Network with leading " +
				"researchers, developers and business leaders.",
			Tags:           []string{"AI", "Machine Learning", "Technology", "Innovation"},
			DressCode:      "Business Casual",
			AgeRestriction: "18+",
		},
		{
			Title:       "Startup Pitch Night",
			Type:        model.EventTypeOffline,
			Date:        date(2023, time.November, 12),
			Time:        "06:00 PM - 09:00 PM",
			Image:       "https://picsum.photos/seed/startupnight/400/300.jpg",
			HostedBy:    "Entrepreneurship Hub",
			Venue:       "Innovation Center",
			Address:     "567 Business Park Drive, Startup City",
			TicketPrice: 25,
			Speakers: []model.Speaker{
				{Name: "Jessica Martinez", Title: "Venture Capitalist"},
				{Name: "David Lee", Title: "Serial Entrepreneur"},
			},
			Description: "An exciting evening where innovative startups pitch their ideas " +
				"to a panel of investors and industry experts. Watch entrepreneurs " +
				"showcase groundbreaking business concepts and compete for funding. " +
				"Includes networking sessions with founders, investors and mentors.",
			Tags:           []string{"Startup", "Entrepreneurship", "Pitching", "Networking"},
			DressCode:      "Business Casual",
			AgeRestriction: "21+",
		},
		{
			Title:       "Open Source Community Call",
			Type:        model.EventTypeOnline,
			Date:        date(2023, time.December, 1),
			Time:        "05:00 PM - 06:30 PM GMT",
			Image:       "https://picsum.photos/seed/osscall/400/300.jpg",
			HostedBy:    "OSS Collective",
			TicketPrice: 0,
			Speakers:    []model.Speaker{},
			Description: "A free community call for open source maintainers and " +
				"contributors. No fixed speaker lineup: bring your project, share what " +
				"you are working on and find collaborators. Newcomers welcome.",
			Tags:           []string{"Open Source", "Community", "Online"},
			DressCode:      "Casual",
			AgeRestriction: "None",
		},
	}
}
