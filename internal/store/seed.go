package store

import "github.com/spec-kit/skillcircuit/internal/domain"

// Seed values used when a collection has never been persisted or its blob
// fails to parse.

func seedCourses() []domain.Course {
	return []domain.Course{
		{
			ID:          "n1",
			Title:       "Digital Fluency 101",
			Description: "Master the essential tools and mental models for modern work.",
			Duration:    "4 Hours",
			Tier:        domain.TierNano,
			Outcomes:    []string{"Tool Mastery", "Cloud Workflow", "Prompt Engineering"},
			Image:       "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?q=80&w=800&auto=format&fit=crop",
			Price:       49,
		},
		{
			ID:          "s1",
			Title:       "Rapid Product Management",
			Description: "Hands-on sprint to build a product roadmap from scratch.",
			Duration:    "12 Hours",
			Tier:        domain.TierSprint,
			Outcomes:    []string{"Product Roadmap", "User Stories", "PRD Writing"},
			Image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?q=80&w=800&auto=format&fit=crop",
			Price:       199,
		},
		{
			ID:          "p1",
			Title:       "Full-Stack Business Analyst",
			Description: "A comprehensive pathway to data-driven decision making.",
			Duration:    "35 Hours",
			Tier:        domain.TierPathway,
			Outcomes:    []string{"Data Viz", "SQL Mastery", "Business Strategy"},
			Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=800&auto=format&fit=crop",
			Price:       499,
		},
		{
			ID:          "l1",
			Title:       "The Launchpad: Leadership & Tech",
			Description: "Our flagship transformation program with 100% placement guarantee.",
			Duration:    "4 Months",
			Tier:        domain.TierLaunchpad,
			Outcomes:    []string{"Job Guarantee", "Leadership Skills", "Portfolio Creation"},
			Image:       "https://images.unsplash.com/photo-1522071820081-009f0129c71c?q=80&w=800&auto=format&fit=crop",
			Price:       1299,
		},
	}
}

func seedFaculty() []domain.FacultyMember {
	return []domain.FacultyMember{
		{ID: "f1", Name: "Dr. Aris Thorne", Email: "aris@sc.io", Specialty: "Behavioral Science", JoinedDate: "2024-01-10"},
	}
}

func seedLeads() []domain.Lead {
	return []domain.Lead{
		{ID: "l1", Name: "James Wilson", Email: "james@example.com", Message: "Interested in Launchpad cohort 14.", Date: "2024-10-25", Status: domain.LeadStatusNew},
	}
}

func seedStudents() []domain.User {
	return []domain.User{
		{ID: "u-1", Name: "Alex Rivera", Email: "alex@student.com", Role: domain.RoleStudent, EnrolledProgram: domain.TierSprint, Progress: 45, HoursLearned: 12},
		{ID: "u-2", Name: "Sarah Chen", Email: "sarah@student.com", Role: domain.RoleStudent, EnrolledProgram: domain.TierPathway, Progress: 10, HoursLearned: 2},
	}
}
