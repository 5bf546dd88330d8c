package seeder

// Defaults returns the demo data seeders in dependency order. passwordHash
// is assigned to every demo user.
func Defaults(passwordHash string) []Seeder {
	return []Seeder{
		UsersSeeder{PasswordHash: passwordHash},
		ProjectsSeeder{},
		GroupsSeeder{},
		FinancialsSeeder{},
	}
}
