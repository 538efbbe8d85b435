// Seeds a local database with users of every role and a handful of devices
// and visitors, so the admin screens and the device protocol have data to
// work against during development.
package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/config"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/logging"
	"github.com/santoso/visitor-gate/internal/repository/postgres"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

func main() {
	log := logging.New(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	ctx := context.Background()
	repos := postgres.NewRepositories(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash seed password", "error", err)
	}

	users := []*domain.User{
		{ID: uuid.New(), Name: "Super Admin", Email: "superuser@example.com", PasswordHash: string(hashed), Role: domain.RoleSuperuser},
		{ID: uuid.New(), Name: "Admin One", Email: "admin1@example.com", PasswordHash: string(hashed), Role: domain.RoleAdmin},
		{ID: uuid.New(), Name: "Admin Two", Email: "admin2@example.com", PasswordHash: string(hashed), Role: domain.RoleAdmin},
		{ID: uuid.New(), Name: "Receptionist One", Email: "receptionist1@example.com", PasswordHash: string(hashed), Role: domain.RoleReceptionist},
		{ID: uuid.New(), Name: "Receptionist Two", Email: "receptionist2@example.com", PasswordHash: string(hashed), Role: domain.RoleReceptionist},
		{ID: uuid.New(), Name: "Receptionist Three", Email: "receptionist3@example.com", PasswordHash: string(hashed), Role: domain.RoleReceptionist},
	}
	for _, u := range users {
		if err := repos.User.Create(ctx, u); err != nil {
			log.Error("failed to seed user", "email", u.Email, "error", err)
		}
	}
	log.Info("seeded users", "count", len(users))

	locations := []string{"Main Lobby", "East Gate", "West Gate", "Loading Dock", "Parking Entrance"}
	for i, location := range locations {
		device := &domain.Device{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Terminal %02d", i+1),
			DeviceKey: uuid.NewString(),
			GroupID:   "default",
			Location:  location,
		}
		if err := repos.Device.Create(ctx, device); err != nil {
			log.Error("failed to seed device", "name", device.Name, "error", err)
			continue
		}
		log.Info("seeded device", "name", device.Name, "deviceKey", device.DeviceKey)
	}

	faceType := 1
	visitors := []*domain.Visitor{
		{Name: "Budi Santoso", IdcardNum: "3175012345678901", Type: &faceType, Passtime: "2026-12-31"},
		{Name: "Siti Rahma", IdcardNum: "3175012345678902", Type: &faceType, Passtime: "2026-12-31"},
		{Name: "Andi Wijaya", IdcardNum: "3175012345678903", Passtime: "2026-06-30"},
	}
	for _, v := range visitors {
		if err := repos.Visitor.Create(ctx, v); err != nil {
			log.Error("failed to seed visitor", "idcardNum", v.IdcardNum, "error", err)
		}
	}
	log.Info("seeded visitors", "count", len(visitors))

	log.Info("seeding finished")
}
