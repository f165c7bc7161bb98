package seeds

import (
	"gorm.io/gorm"

	"locallibrary_backend/internals/helpers/i18n"
	catalog "locallibrary_backend/internals/seeds/catalog"
	users "locallibrary_backend/internals/seeds/users/auth"
)

// RunAllSeeds loads the demo data. Permissions must already exist, so this
// runs after database.Register.
func RunAllSeeds(db *gorm.DB, cat *i18n.Catalog) {

	//* User
	users.SeedUsersFromJSON(db, cat, "internals/seeds/users/auth/data_users.json")

	//* Catalog
	catalog.SeedCatalogFromJSON(db, "internals/seeds/catalog/data_catalog.json")
}
