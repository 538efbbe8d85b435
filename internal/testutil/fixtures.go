package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/santoso/visitor-gate/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("Test User %s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		role:     domain.RoleReceptionist,
	}
}

// WithName sets the user name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Role:         b.role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// Login authenticates the built user via the API and returns the token
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var loginResp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return loginResp.Data.Token
}

// DeviceBuilder creates test devices
type DeviceBuilder struct {
	name      string
	deviceKey string
	groupID   string
	location  string
}

// NewDeviceBuilder creates a new DeviceBuilder with default values
func NewDeviceBuilder() *DeviceBuilder {
	return &DeviceBuilder{
		name:      fmt.Sprintf("Terminal %s", uuid.New().String()[:6]),
		deviceKey: uuid.NewString(),
		groupID:   "default",
		location:  "Main Lobby",
	}
}

// WithDeviceKey sets the device key
func (b *DeviceBuilder) WithDeviceKey(key string) *DeviceBuilder {
	b.deviceKey = key
	return b
}

// WithGroupID sets the group id
func (b *DeviceBuilder) WithGroupID(groupID string) *DeviceBuilder {
	b.groupID = groupID
	return b
}

// Build creates the device in the database
func (b *DeviceBuilder) Build(t *testing.T, db *gorm.DB) *domain.Device {
	t.Helper()

	device := &domain.Device{
		ID:        uuid.New(),
		Name:      b.name,
		DeviceKey: b.deviceKey,
		GroupID:   b.groupID,
		Location:  b.location,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(device).Error; err != nil {
		t.Fatalf("failed to create device: %v", err)
	}

	return device
}

// VisitorBuilder creates test visitors
type VisitorBuilder struct {
	name      string
	idcardNum string
	imgBase64 string
	visType   *int
	passtime  string
}

// NewVisitorBuilder creates a new VisitorBuilder with default values
func NewVisitorBuilder() *VisitorBuilder {
	return &VisitorBuilder{
		name:      fmt.Sprintf("Visitor %s", uuid.New().String()[:6]),
		idcardNum: uuid.New().String()[:16],
	}
}

// WithName sets the visitor name
func (b *VisitorBuilder) WithName(name string) *VisitorBuilder {
	b.name = name
	return b
}

// WithIdcardNum sets the idcard number
func (b *VisitorBuilder) WithIdcardNum(idcardNum string) *VisitorBuilder {
	b.idcardNum = idcardNum
	return b
}

// WithImgBase64 sets the reference image
func (b *VisitorBuilder) WithImgBase64(img string) *VisitorBuilder {
	b.imgBase64 = img
	return b
}

// WithType sets the visitor type
func (b *VisitorBuilder) WithType(visType int) *VisitorBuilder {
	b.visType = &visType
	return b
}

// WithPasstime sets the validity window marker
func (b *VisitorBuilder) WithPasstime(passtime string) *VisitorBuilder {
	b.passtime = passtime
	return b
}

// Build creates the visitor in the database
func (b *VisitorBuilder) Build(t *testing.T, db *gorm.DB) *domain.Visitor {
	t.Helper()

	visitor := &domain.Visitor{
		Name:      b.name,
		IdcardNum: b.idcardNum,
		ImgBase64: b.imgBase64,
		Type:      b.visType,
		Passtime:  b.passtime,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(visitor).Error; err != nil {
		t.Fatalf("failed to create visitor: %v", err)
	}

	return visitor
}

// SeedVisitors creates N visitors in insertion order
func SeedVisitors(t *testing.T, db *gorm.DB, count int) []*domain.Visitor {
	t.Helper()

	visitors := make([]*domain.Visitor, count)
	for i := 0; i < count; i++ {
		visitors[i] = NewVisitorBuilder().
			WithName(fmt.Sprintf("Visitor %03d", i)).
			WithIdcardNum(fmt.Sprintf("317501%010d", i)).
			Build(t, db)
	}
	return visitors
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
