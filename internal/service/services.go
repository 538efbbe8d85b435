package service

import (
	"github.com/santoso/visitor-gate/internal/config"
	"github.com/santoso/visitor-gate/internal/repository"
)

type Services struct {
	Auth       *AuthService
	User       *UserService
	Device     *DeviceService
	Visitor    *VisitorService
	Roster     *RosterService
	Attendance *AttendanceService
	Stats      *StatsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, cfg),
		User:       NewUserService(repos.User),
		Device:     NewDeviceService(repos.Device),
		Visitor:    NewVisitorService(repos.Visitor),
		Roster:     NewRosterService(repos.Device, repos.Visitor),
		Attendance: NewAttendanceService(repos.Device, repos.Visitor, repos.Attendance),
		Stats:      NewStatsService(repos.User, repos.Device, repos.Visitor, repos.Attendance),
	}
}
