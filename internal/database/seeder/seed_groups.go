package seeder

import (
	"context"
	"fmt"

	"skillforge/internal/domain/group"
	"skillforge/internal/repository"
)

type GroupsSeeder struct{}

func (GroupsSeeder) Name() string { return "groups" }

var demoGroups = []struct {
	key, owner, parent string
	g                  group.Group
}{
	{"group-1", "user-1", "", group.Group{Name: "Engineering", Type: group.TypeDepartment, Description: "Software Engineering Department"}},
	{"group-2", "user-3", "", group.Group{Name: "Platform Engineering", Type: group.TypeDepartment, Description: "Infrastructure and Platform Team"}},
	{"group-3", "user-4", "", group.Group{Name: "Data & Analytics", Type: group.TypeDepartment, Description: "Data Engineering and Analytics"}},
	{"group-4", "user-5", "", group.Group{Name: "Design", Type: group.TypeDepartment, Description: "UX/UI Design Team"}},
	{"group-5", "user-3", "", group.Group{Name: "Cloud Practice", Type: group.TypePractice, Description: "Cloud architecture and migration specialists"}},
	{"group-6", "user-1", "group-1", group.Group{Name: "Frontend Practice", Type: group.TypePractice, Description: "Frontend development specialists"}},
	{"group-7", "user-2", "group-1", group.Group{Name: "Backend Practice", Type: group.TypePractice, Description: "Backend development specialists"}},
}

var demoMemberships = []struct {
	user, group string
	primary     bool
}{
	{"user-1", "group-1", true},
	{"user-1", "group-6", false},
	{"user-2", "group-1", true},
	{"user-2", "group-7", false},
	{"user-3", "group-2", true},
	{"user-3", "group-5", false},
	{"user-4", "group-3", true},
	{"user-5", "group-4", true},
	{"user-6", "group-2", true},
	{"user-6", "group-5", false},
}

func (GroupsSeeder) Run(ctx context.Context, repos repository.Repositories) error {
	for _, d := range demoGroups {
		g := d.g
		g.ID = ID(d.key)
		g.OwnerID = idPtr(d.owner)
		if d.parent != "" {
			g.ParentGroupID = idPtr(d.parent)
		}
		if _, err := repos.Groups.Create(ctx, g); err != nil {
			return fmt.Errorf("create group %s: %w", d.key, err)
		}
	}

	for _, m := range demoMemberships {
		_, err := repos.Groups.AddMember(ctx, group.Membership{UserID: ID(m.user), GroupID: ID(m.group), IsPrimary: m.primary})
		if err != nil {
			return fmt.Errorf("add %s to %s: %w", m.user, m.group, err)
		}
	}
	return nil
}
