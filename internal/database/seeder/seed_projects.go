package seeder

import (
	"context"
	"fmt"

	"skillforge/internal/domain/contract"
	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"
	"skillforge/internal/repository"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

var demoProjects = []struct {
	key string
	p   project.Project
}{
	{"proj-1", project.Project{
		Name: "Digital Banking Transformation", ClientName: "First National Bank", ProjectCode: "FNB-2024-001",
		StartDate: date("2024-01-15"), EndDate: date("2024-12-31"), Status: project.StatusActive,
		Description: "Complete overhaul of online banking platform with modern React frontend and microservices backend.",
	}},
	{"proj-2", project.Project{
		Name: "Healthcare Portal Modernization", ClientName: "MediCare Systems", ProjectCode: "MCS-2024-002",
		StartDate: date("2024-03-01"), EndDate: date("2024-09-30"), Status: project.StatusActive,
		Description: "Migration of legacy patient portal to cloud-native architecture with enhanced security.",
	}},
	{"proj-3", project.Project{
		Name: "E-Commerce Platform", ClientName: "RetailCo", ProjectCode: "RTC-2024-003",
		StartDate: date("2024-06-01"), EndDate: date("2025-03-31"), Status: project.StatusPipeline,
		Description: "Build new e-commerce platform with AI-powered recommendations and real-time inventory.",
	}},
	{"proj-4", project.Project{
		Name: "Insurance Claims Automation", ClientName: "SafeGuard Insurance", ProjectCode: "SGI-2023-004",
		StartDate: date("2023-09-01"), EndDate: date("2024-02-28"), Status: project.StatusCompleted,
		Description: "Automated claims processing system using machine learning and workflow automation.",
	}},
}

func req(name, category, subcategory string, minLevel skill.ProficiencyLevel) project.SkillRequirement {
	return project.SkillRequirement{SkillName: name, Category: category, Subcategory: subcategory, MinProficiency: minLevel}
}

var demoRoles = []struct {
	key, project string
	r            project.Role
}{
	{"role-1", "proj-1", project.Role{
		Title: "Senior Backend Developer", Count: 2,
		RequiredSkills: []project.SkillRequirement{
			req("Java", appDev, "Languages", 4),
			req("Spring Boot", appDev, "Backend Frameworks", 4),
			req("AWS", platform, "Cloud Providers", 3),
		},
		SoftSkillPreferences: []string{"Mentoring", "Client Facing"},
		Description:          "Lead backend development for microservices architecture",
	}},
	{"role-2", "proj-1", project.Role{
		Title: "Frontend Architect", Count: 1,
		RequiredSkills: []project.SkillRequirement{
			req("React", appDev, "Frontend Frameworks", 5),
			req("TypeScript", appDev, "Languages", 4),
			req("UI/UX Design", domainKnow, uxDesign, 3),
		},
		Description: "Design and implement frontend architecture",
	}},
	{"role-3", "proj-2", project.Role{
		Title: "Cloud Engineer", Count: 1,
		RequiredSkills: []project.SkillRequirement{
			req("Azure", platform, "Cloud Providers", 4),
			req("Kubernetes", platform, "DevOps", 3),
			req("Terraform", platform, "DevOps", 3),
		},
		Description: "Manage cloud infrastructure and deployment pipelines",
	}},
	{"role-4", "proj-3", project.Role{
		Title: "Full Stack Developer", Count: 3,
		RequiredSkills: []project.SkillRequirement{
			req("Node.js", appDev, "Backend Frameworks", 3),
			req("React", appDev, "Frontend Frameworks", 3),
			req("TypeScript", appDev, "Languages", 3),
		},
		Description: "Develop features across the full stack",
	}},
}

var demoAssignments = []struct {
	key, project, user, role string
	a                        project.Assignment
}{
	{"assign-1", "proj-1", "user-1", "role-2", project.Assignment{
		RoleTitle: "Frontend Architect", AllocationPercent: 100,
		StartDate: date("2024-01-15"), EndDate: date("2024-12-31"),
		Status: project.AssignmentActive, BookingType: project.BookingHard,
		Notes: "Leading frontend architecture and mentoring junior developers",
	}},
	{"assign-2", "proj-2", "user-1", "role-3", project.Assignment{
		RoleTitle: "Cloud Engineer", AllocationPercent: 50,
		StartDate: date("2024-03-01"), EndDate: date("2024-06-30"),
		Status: project.AssignmentProposed, BookingType: project.BookingSoft,
		Notes: "Part-time support for cloud migration",
	}},
}

func (ProjectsSeeder) Run(ctx context.Context, repos repository.Repositories) error {
	owner := ID("user-1")
	for _, d := range demoProjects {
		p := d.p
		p.ID = ID(d.key)
		p.OwnerID = owner
		if _, err := repos.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("create project %s: %w", d.key, err)
		}
	}

	for _, d := range demoRoles {
		r := d.r
		r.ID = ID(d.key)
		r.ProjectID = ID(d.project)
		if _, err := repos.Roles.Create(ctx, r); err != nil {
			return fmt.Errorf("create role %s: %w", d.key, err)
		}
	}

	for _, d := range demoAssignments {
		a := d.a
		a.ID = ID(d.key)
		a.ProjectID = ID(d.project)
		a.UserID = ID(d.user)
		a.RoleID = ID(d.role)
		if _, err := repos.Assignments.Create(ctx, a); err != nil {
			return fmt.Errorf("create assignment %s: %w", d.key, err)
		}
	}

	return seedContracts(ctx, repos.Contracts)
}

func seedContracts(ctx context.Context, c repository.ContractRepositories) error {
	proj := ID("proj-1")

	sow := contract.SOW{
		ID: ID("sow-1"), ProjectID: proj, Title: "Digital Banking Phase 1", Version: "1.0",
		Status: contract.SOWActive, StartDate: date("2024-01-15"), EndDate: date("2024-12-31"),
		TotalValue: 1200000, Currency: "USD",
		Scope:        "Frontend rebuild and core banking microservices",
		Deliverables: []string{"Customer portal", "Payments service", "Accounts service"},
		Milestones: []contract.Milestone{
			{Name: "Discovery complete", DueDate: date("2024-02-29"), Payment: 200000, Completed: true},
			{Name: "Portal beta", DueDate: date("2024-07-31"), Payment: 500000},
		},
		CreatedDate: date("2024-01-05"),
	}
	if _, err := c.SOWs.Create(ctx, sow); err != nil {
		return fmt.Errorf("create sow: %w", err)
	}

	risk := contract.Risk{
		ID: ID("risk-1"), ProjectID: proj, Title: "Core banking API instability",
		Description: "Legacy core banking APIs time out under load tests",
		Category:    "Technical", Severity: contract.SeverityHigh, Probability: contract.ProbabilityMedium,
		Status: contract.RiskMitigating, Impact: "Payments release may slip",
		MitigationPlan: "Introduce a caching facade and retry budget", Owner: "John Smith",
		IdentifiedDate: date("2024-03-10"), LastUpdated: date("2024-04-02"),
	}
	if _, err := c.Risks.Create(ctx, risk); err != nil {
		return fmt.Errorf("create risk: %w", err)
	}

	dep := contract.Dependency{
		ID: ID("dep-1"), ProjectID: proj, Title: "Client SSO integration",
		Description: "Bank identity team must expose OIDC endpoints",
		Type:        contract.DependencyExternal, Status: contract.DependencyInProgress,
		DependsOn: "FNB Identity Team", DependentParty: "Portal squad",
		RequiredDate: date("2024-05-01"), Impact: "Blocks customer login", Owner: "Jane Doe",
		CreatedDate: date("2024-02-01"), LastUpdated: date("2024-03-15"),
	}
	if _, err := c.Dependencies.Create(ctx, dep); err != nil {
		return fmt.Errorf("create dependency: %w", err)
	}
	return nil
}
