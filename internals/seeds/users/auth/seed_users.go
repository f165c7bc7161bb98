package user

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authRepo "locallibrary_backend/internals/features/users/auth/repository"
	authService "locallibrary_backend/internals/features/users/auth/service"
	"locallibrary_backend/internals/features/users/user/model"
	"locallibrary_backend/internals/helpers/i18n"
)

type UserSeed struct {
	UserName    string   `json:"user_name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func SeedUsersFromJSON(db *gorm.DB, cat *i18n.Catalog, filePath string) {
	log.Println("[SEED] reading users:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED] read JSON failed: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[SEED] decode JSON failed: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("[SEED] user '%s' already exists, skipped", data.Email)
			continue
		}

		newUser, errs := buildUser(cat, data)
		if errs != nil {
			log.Printf("[SEED] user '%s' invalid: %v", data.Email, errs)
			continue
		}

		hashedPassword, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("[SEED] hash password for '%s' failed: %v", data.Email, err)
			continue
		}
		newUser.Password = hashedPassword

		if err := authRepo.CreateUser(db, &newUser); err != nil {
			log.Printf("[SEED] insert user '%s' failed: %v", data.Email, err)
			continue
		}
		log.Printf("[SEED] user '%s' inserted", data.Email)

		for _, codename := range data.Permissions {
			if err := authRepo.GrantPermission(db, newUser.ID, codename); err != nil {
				log.Printf("[SEED] grant %s to '%s' failed: %v", codename, data.Email, err)
			}
		}
	}
}

// buildUser validates the plaintext password before it is hashed; messages
// come out in the catalog's default locale.
func buildUser(cat *i18n.Catalog, data UserSeed) (model.UserModel, map[string][]string) {
	u := model.UserModel{
		UserName: data.UserName,
		Email:    data.Email,
		Password: data.Password,
		Role:     data.Role,
	}
	u.SetDefaultValues()
	return u, cat.ValidateStruct(cat.DefaultLocale(), &u)
}
