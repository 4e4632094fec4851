package seed

import "github.com/eventforge/backend/internal/models"

// SamplePortfolio returns the showcase items the marketing site ships with.
func SamplePortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			Title:       "Annual Tech Summit",
			Category:    "Corporate Conference",
			ImageURL:    "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=1000&q=80",
			Description: "A premier tech industry gathering hosting over 1,500 professionals from leading companies.",
			Overview:    "A premier tech industry gathering hosting over 1,500 professionals from leading companies. The event featured keynote speakers, panel discussions, and interactive workshops across three days.",
			Role: []string{
				"Full venue coordination and management",
				"Speaker and VIP logistics coordination",
				"Custom stage and multimedia production",
				"Catering and refreshment services",
				"Networking event facilitation",
				"Technical support throughout the conference",
			},
			Results:  "The summit received a 94% satisfaction rating from attendees, with 87% expressing intent to return for the next event. Speaker engagement metrics exceeded industry averages by 23%.",
			Tags:     []string{"Technology", "Corporate", "Conference"},
			Featured: true,
		},
		{
			Title:       "Johnson Wedding",
			Category:    "Luxury Wedding",
			ImageURL:    "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=450&q=80",
			Description: "An elegant wedding with custom floral arrangements and live entertainment.",
			Overview:    "A luxury wedding celebration for 200 guests featuring bespoke decor, gourmet catering, and seamless coordination of all vendors and entertainment.",
			Role: []string{
				"Complete wedding planning and coordination",
				"Custom decor and floral design",
				"Vendor selection and management",
				"Day-of coordination and timeline management",
				"Guest experience planning",
			},
			Results:  "Created a flawless celebration that exceeded the couple's expectations while managing all logistics and vendor coordination without a single issue.",
			Tags:     []string{"Wedding", "Luxury", "Celebration"},
			Featured: true,
		},
		{
			Title:       "SoundWave Festival",
			Category:    "Music Festival",
			ImageURL:    "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=450&q=80",
			Description: "A three-day music festival featuring over 40 artists across multiple stages.",
			Overview:    "A major music festival attracting over 25,000 attendees daily with multiple stages, food vendors, and interactive experiences.",
			Role: []string{
				"Complete festival logistics and production",
				"Artist coordination and scheduling",
				"Security and crowd management",
				"Vendor management",
				"Stage production",
			},
			Results: "Successfully managed one of the region's largest music festivals with zero safety incidents and 92% positive attendee feedback.",
			Tags:    []string{"Music", "Festival", "Entertainment"},
		},
		{
			Title:       "Nova Phone Launch",
			Category:    "Product Launch",
			ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=450&q=80",
			Description: "A high-profile product launch event with media coverage and interactive demos.",
			Overview:    "A high-profile product launch for a major tech company's flagship smartphone, featuring interactive demo stations, media presentations, and VIP reception.",
			Role: []string{
				"Event concept development",
				"Media coordination",
				"Demo station setup",
				"Technical production",
				"Celebrity host management",
			},
			Results: "Generated over 3 million social media impressions and secured coverage in 45+ major tech publications.",
			Tags:    []string{"Technology", "Product Launch", "Corporate"},
		},
		{
			Title:       "Hope Foundation Gala",
			Category:    "Charity Event",
			ImageURL:    "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=450&q=80",
			Description: "An annual fundraising gala that raised over $1.2 million for youth education programs.",
			Overview:    "An elegant charity gala dinner for 500 guests with silent and live auctions, entertainment, and fundraising activities.",
			Role: []string{
				"Full event planning and coordination",
				"Fundraising strategy",
				"Auction management",
				"Sponsor coordination",
				"Entertainment booking",
			},
			Results: "Raised 40% more funds than the previous year, with a total of $1.2 million for youth education initiatives.",
			Tags:    []string{"Charity", "Fundraising", "Gala"},
		},
		{
			Title:       "Apex Team Retreat",
			Category:    "Corporate Retreat",
			ImageURL:    "https://images.unsplash.com/photo-1560439514-4e9645039924?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=450&q=80",
			Description: "A three-day corporate retreat focused on team building and strategic planning.",
			Overview:    "A comprehensive corporate retreat for 120 executives including workshops, team-building activities, and wellness sessions at a luxury resort.",
			Role: []string{
				"Location scouting and selection",
				"Activity planning and facilitation",
				"Accommodation and travel coordination",
				"Meeting space setup",
				"Wellness program development",
			},
			Results: "Post-event survey showed a 35% improvement in team cohesion metrics and 28% increase in strategic alignment scores.",
			Tags:    []string{"Corporate", "Retreat", "Team Building"},
		},
	}
}

// SampleTestimonials returns the client quotes shown on the home page.
func SampleTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Rating:         5,
			Content:        "EventForge made our corporate anniversary event absolutely flawless. Their attention to detail and creativity exceeded our expectations.",
			Author:         "Sarah Bennett",
			Position:       "Marketing Director, TechCorp",
			AvatarInitials: "SB",
		},
		{
			Rating:         5,
			Content:        "Our wedding was a dream come true thanks to EventForge. They handled everything with such care and professionalism.",
			Author:         "Alex & Maya Rodriguez",
			Position:       "Wedding Clients",
			AvatarInitials: "AM",
		},
		{
			Rating:         5,
			Content:        "The SoundWave Festival was a massive undertaking, but EventForge managed it brilliantly. From logistics to artist coordination, they nailed every aspect.",
			Author:         "Jason Lee",
			Position:       "Event Director, Rhythm Productions",
			AvatarInitials: "JL",
		},
		{
			Rating:         5,
			Content:        "Our fundraising gala raised 40% more than last year, and I credit EventForge's strategic planning and execution. They understood our mission and delivered perfectly.",
			Author:         "Elena Martinez",
			Position:       "Director, Hope Foundation",
			AvatarInitials: "EM",
		},
	}
}
