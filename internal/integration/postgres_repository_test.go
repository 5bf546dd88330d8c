package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"skillforge/internal/config"
	"skillforge/internal/database"
	"skillforge/internal/database/migration"
	dbpostgres "skillforge/internal/database/postgres"
	"skillforge/internal/domain/contract"
	"skillforge/internal/domain/group"
	"skillforge/internal/domain/project"
	"skillforge/internal/domain/skill"
	"skillforge/internal/domain/user"
	"skillforge/internal/domain/utilization"
	"skillforge/internal/repository"
	"skillforge/internal/usecase"

	"github.com/google/uuid"
)

func TestIntegration_Postgres_StaffingRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	repos := repository.NewPostgres(db)
	seed := seedDummyData(t, ctx, repos)
	defer cleanupSeed(t, ctx, db, seed)

	got, err := repos.Users.GetByID(ctx, seed.userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if len(got.Skills) != 2 {
		t.Fatalf("user skills: expected 2, got %d", len(got.Skills))
	}
	if _, err := repos.Users.AddSkill(ctx, seed.userID, skill.Skill{
		ID: uuid.New(), Name: "Go", Category: "Application Development", Subcategory: "Languages", Proficiency: skill.ProficiencyNovice, Tags: []uuid.UUID{},
	}); err != repository.ErrDuplicate {
		t.Fatalf("duplicate skill: expected ErrDuplicate, got %v", err)
	}

	staffing := usecase.NewStaffingUsecase(repos, nil, nil)
	cs, err := staffing.SearchUsersForRole(ctx, seed.roleID, usecase.SearchParams{})
	if err != nil {
		t.Fatalf("search candidates: %v", err)
	}
	found := false
	for i, c := range cs {
		if i > 0 && cs[i-1].Match.MatchPercentage < c.Match.MatchPercentage {
			t.Fatalf("candidates: expected descending scores at %d", i)
		}
		if c.User.ID == seed.userID {
			found = true
			if c.Match.MatchPercentage != 100 {
				t.Fatalf("candidates: expected 100 for seeded user, got %v", c.Match.MatchPercentage)
			}
			if c.Utilization != 40 {
				t.Fatalf("candidates: expected utilization 40, got %d", c.Utilization)
			}
		}
	}
	if !found {
		t.Fatalf("candidates: expected seeded user in result")
	}

	sum, err := staffing.GetUserUtilization(ctx, seed.userID, utilization.Window{})
	if err != nil {
		t.Fatalf("utilization: %v", err)
	}
	if sum.TotalUtilization != 40 || len(sum.Assignments) != 1 {
		t.Fatalf("utilization: expected 40%% over 1 assignment, got %d%% over %d", sum.TotalUtilization, len(sum.Assignments))
	}

	risks, err := repos.Contracts.Risks.List(ctx, seed.projectID)
	if err != nil {
		t.Fatalf("list risks: %v", err)
	}
	if len(risks) != 1 || risks[0].Title != "Vendor delay" {
		t.Fatalf("risks: expected seeded risk, got %+v", risks)
	}

	ms, err := repos.Groups.ListMembershipsByUser(ctx, seed.userID)
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	if len(ms) != 1 || !ms[0].IsPrimary {
		t.Fatalf("memberships: expected one primary membership, got %+v", ms)
	}

	if err := repos.Projects.Delete(ctx, seed.projectID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if _, err := repos.Roles.GetByID(ctx, seed.roleID); err != repository.ErrNotFound {
		t.Fatalf("roles: expected cascade delete, got %v", err)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("SKILLFORGE_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("SKILLFORGE_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("SKILLFORGE_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	usr := stringsOrDefault(os.Getenv("SKILLFORGE_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("SKILLFORGE_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("SKILLFORGE_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || usr == "" {
		t.Skip("missing test DB env vars: set SKILLFORGE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     usr,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}, nil)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

type seededIDs struct {
	userID    uuid.UUID
	projectID uuid.UUID
	roleID    uuid.UUID
	groupID   uuid.UUID
}

func seedDummyData(t *testing.T, ctx context.Context, repos repository.Repositories) seededIDs {
	t.Helper()

	out := seededIDs{userID: uuid.New(), projectID: uuid.New(), roleID: uuid.New(), groupID: uuid.New()}

	if _, err := repos.Users.Create(ctx, user.User{
		ID: out.userID, Name: "Integration User", Email: "it-" + out.userID.String() + "@example.com",
		Role: "Backend Developer", Department: "Engineering", Status: user.StatusActive,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, s := range []skill.Skill{
		{ID: uuid.New(), Name: "Go", Category: "Application Development", Subcategory: "Languages", Proficiency: skill.ProficiencyExpert, Tags: []uuid.UUID{}},
		{ID: uuid.New(), Name: "PostgreSQL", Category: "Data Management", Subcategory: "Databases", Proficiency: skill.ProficiencyAdvanced, Tags: []uuid.UUID{}},
	} {
		if _, err := repos.Users.AddSkill(ctx, out.userID, s); err != nil {
			t.Fatalf("add skill %s: %v", s.Name, err)
		}
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	if _, err := repos.Projects.Create(ctx, project.Project{
		ID: out.projectID, Name: "IT Project", StartDate: start, EndDate: end,
		Status: project.StatusActive, OwnerID: out.userID,
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := repos.Roles.Create(ctx, project.Role{
		ID: out.roleID, ProjectID: out.projectID, Title: "Go Developer", Count: 1,
		RequiredSkills: []project.SkillRequirement{
			{SkillName: "Go", Category: "Application Development", Subcategory: "Languages", MinProficiency: skill.ProficiencyAdvanced},
		},
	}); err != nil {
		t.Fatalf("create role: %v", err)
	}
	if _, err := repos.Assignments.Create(ctx, project.Assignment{
		ID: uuid.New(), ProjectID: out.projectID, UserID: out.userID, RoleID: out.roleID,
		RoleTitle: "Go Developer", AllocationPercent: 40, StartDate: start, EndDate: end,
		Status: project.AssignmentActive, BookingType: project.BookingHard,
	}); err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	if _, err := repos.Contracts.Risks.Create(ctx, contract.Risk{
		ID: uuid.New(), ProjectID: out.projectID, Title: "Vendor delay",
		Severity: contract.SeverityHigh, Probability: contract.ProbabilityMedium, Status: contract.RiskIdentified,
	}); err != nil {
		t.Fatalf("create risk: %v", err)
	}

	if _, err := repos.Groups.Create(ctx, group.Group{
		ID: out.groupID, Name: "IT Group " + out.groupID.String()[:8], Type: group.TypeSquad, OwnerID: &out.userID,
	}); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := repos.Groups.AddMember(ctx, group.Membership{UserID: out.userID, GroupID: out.groupID, IsPrimary: true}); err != nil {
		t.Fatalf("add member: %v", err)
	}

	return out
}

func cleanupSeed(t *testing.T, ctx context.Context, db database.DB, seed seededIDs) {
	t.Helper()

	for _, q := range []struct {
		sql string
		id  uuid.UUID
	}{
		{"DELETE FROM projects WHERE id = $1", seed.projectID},
		{"DELETE FROM groups WHERE id = $1", seed.groupID},
		{"DELETE FROM users WHERE id = $1", seed.userID},
	} {
		if _, err := db.Exec(ctx, q.sql, q.id); err != nil {
			t.Errorf("cleanup: %v", err)
		}
	}
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
