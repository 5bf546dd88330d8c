package seeder

import (
	"context"
	"fmt"

	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/repository"

	"github.com/google/uuid"
)

type UsersSeeder struct {
	PasswordHash string
}

func (UsersSeeder) Name() string { return "users" }

type demoSkill struct {
	name, category, subcategory string
	level                       skill.ProficiencyLevel
	verified                    bool
}

type demoUser struct {
	key    string
	user   user.User
	skills []demoSkill
}

const (
	appDev     = "Application Development"
	platform   = "Platform Engineering"
	dataMgmt   = "Data Management"
	domainKnow = "Domain Knowledge"
	uxDesign   = "User Experience & Design"
)

var demoUsers = []demoUser{
	{
		key: "user-1",
		user: user.User{
			Name: "Jane Doe", Email: "jane.doe@example.com", Role: "Senior Frontend Engineer",
			Department: "Engineering", Tenure: "3 years 2 months", AvatarURL: "https://i.pravatar.cc/150?u=jane",
			Title: "Senior Software Engineer", Location: "New York, NY", Status: user.StatusActive, IsAdmin: true,
		},
		skills: []demoSkill{
			{"React", appDev, "Frontend Frameworks", 5, true},
			{"TypeScript", appDev, "Languages", 4, true},
			{"Node.js", appDev, "Backend Frameworks", 3, false},
			{"GraphQL", appDev, "Backend Frameworks", 3, true},
			{"UI/UX Design", domainKnow, uxDesign, 4, false},
			{"AWS", platform, "Cloud Providers", 2, true},
		},
	},
	{
		key: "user-2",
		user: user.User{
			Name: "John Smith", Email: "john.smith@example.com", Role: "Backend Developer",
			Department: "Engineering", Tenure: "2 years 6 months", AvatarURL: "https://i.pravatar.cc/150?u=john",
			Title: "Senior Backend Developer", Location: "San Francisco, CA", Status: user.StatusActive,
		},
		skills: []demoSkill{
			{"Java", appDev, "Languages", 5, true},
			{"Spring Boot", appDev, "Backend Frameworks", 4, true},
			{"PostgreSQL", dataMgmt, "Databases", 4, true},
		},
	},
	{
		key: "user-3",
		user: user.User{
			Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Role: "Cloud Architect",
			Department: "Platform Engineering", Tenure: "5 years 1 month", AvatarURL: "https://i.pravatar.cc/150?u=sarah",
			Title: "Principal Cloud Architect", Location: "Austin, TX", Status: user.StatusActive,
		},
		skills: []demoSkill{
			{"AWS", platform, "Cloud Providers", 5, true},
			{"Kubernetes", platform, "DevOps", 5, true},
			{"Terraform", platform, "DevOps", 4, true},
		},
	},
	{
		key: "user-4",
		user: user.User{
			Name: "Michael Chen", Email: "michael.chen@example.com", Role: "Data Engineer",
			Department: "Data & Analytics", Tenure: "1 year 8 months", AvatarURL: "https://i.pravatar.cc/150?u=michael",
			Title: "Data Engineer", Location: "Seattle, WA", Status: user.StatusActive,
		},
		skills: []demoSkill{
			{"Python", appDev, "Languages", 4, true},
			{"Apache Spark", dataMgmt, "Big Data", 3, true},
			{"SQL", dataMgmt, "Databases", 4, true},
		},
	},
	{
		key: "user-5",
		user: user.User{
			Name: "Emily Rodriguez", Email: "emily.rodriguez@example.com", Role: "UX Designer",
			Department: "Design", Tenure: "3 years 4 months", AvatarURL: "https://i.pravatar.cc/150?u=emily",
			Title: "Senior UX Designer", Location: "Remote", Status: user.StatusActive,
		},
		skills: []demoSkill{
			{"UI/UX Design", domainKnow, uxDesign, 5, true},
			{"Figma", domainKnow, uxDesign, 5, true},
			{"User Research", domainKnow, uxDesign, 4, true},
		},
	},
	{
		key: "user-6",
		user: user.User{
			Name: "David Kim", Email: "david.kim@example.com", Role: "DevOps Engineer",
			Department: "Platform Engineering", Tenure: "4 years 2 months", AvatarURL: "https://i.pravatar.cc/150?u=david",
			Title: "Staff DevOps Engineer", Location: "Boston, MA", Status: user.StatusInactive,
		},
		skills: []demoSkill{
			{"Docker", platform, "DevOps", 5, true},
			{"Jenkins", platform, "DevOps", 4, true},
			{"Azure", platform, "Cloud Providers", 3, true},
		},
	},
}

func (s UsersSeeder) Run(ctx context.Context, repos repository.Repositories) error {
	for _, d := range demoUsers {
		u := d.user
		u.ID = ID(d.key)
		u.PasswordHash = s.PasswordHash
		if _, err := repos.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("create %s: %w", u.Email, err)
		}

		for _, ds := range d.skills {
			_, err := repos.Users.AddSkill(ctx, u.ID, skill.Skill{
				ID:          ID(d.key + "/" + ds.name),
				Name:        ds.name,
				Category:    ds.category,
				Subcategory: ds.subcategory,
				Proficiency: ds.level,
				Verified:    ds.verified,
				Tags:        []uuid.UUID{},
			})
			if err != nil {
				return fmt.Errorf("add skill %s to %s: %w", ds.name, u.Email, err)
			}
		}
	}
	return nil
}
